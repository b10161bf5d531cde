package firedb

import (
	"context"
	"fmt"
)

const usersCollection = "users"

// GetUser loads a portal user document. User provisioning happens through
// the identity provider; this backend only reads the role and profile.
func (s *Store) GetUser(ctx context.Context, id string) (User, error) {
	doc, err := s.client.Collection(usersCollection).Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return User{}, ErrDocumentNotFound
		}
		return User{}, err
	}

	var user User
	if err = doc.DataTo(&user); err != nil {
		return User{}, fmt.Errorf("failed to decode user %s: %w", doc.Ref.ID, err)
	}

	user.ID = doc.Ref.ID
	return user, nil
}
