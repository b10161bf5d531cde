package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/katatrina/dentcare-BE/internal/firedb"
	"github.com/katatrina/dentcare-BE/internal/token"
)

func (server *Server) uploadFileToCloudinary(key string, value string, folder string, files ...*multipart.FileHeader) (uploadedFileURLs []string, err error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files provided")
	}

	for _, file := range files {
		// Open and read file
		currentFile, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer currentFile.Close()

		fileBytes, err := io.ReadAll(currentFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		fileName := fmt.Sprintf("%s_%s_%d", key, value, time.Now().Unix())

		uploadedFileURL, err := server.fileStore.UploadFile(fileBytes, fileName, folder)
		if err != nil {
			return nil, fmt.Errorf("failed to upload file: %w", err)
		}

		uploadedFileURLs = append(uploadedFileURLs, uploadedFileURL)
	}

	return uploadedFileURLs, nil
}

// authenticatedUserID returns the subject of the verified access token.
func authenticatedUserID(ctx *gin.Context) string {
	authPayload := ctx.MustGet(authorizationPayloadKey).(*token.Payload)
	return authPayload.Subject
}

// authenticatedUser returns the user document loaded by requiredRole.
func authenticatedUser(ctx *gin.Context) *firedb.User {
	return ctx.MustGet(authenticatedUserKey).(*firedb.User)
}
