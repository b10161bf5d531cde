package token_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/katatrina/dentcare-BE/internal/token"
)

const testSecretKey = "12345678901234567890123456789012"

func TestJWTMaker_CreateAndVerify(t *testing.T) {
	maker, err := token.NewJWTMaker(testSecretKey)
	if err != nil {
		t.Fatalf("failed to create maker: %v", err)
	}

	tokenString, payload, err := maker.CreateToken("user1", "staff", time.Minute)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}
	if payload.Subject != "user1" || payload.Role != "staff" {
		t.Fatalf("unexpected payload: %+v", payload)
	}

	verified, err := maker.VerifyToken(tokenString)
	if err != nil {
		t.Fatalf("failed to verify token: %v", err)
	}
	if verified.Subject != "user1" || verified.Role != "staff" {
		t.Fatalf("unexpected verified payload: %+v", verified)
	}
}

func TestJWTMaker_ExpiredToken(t *testing.T) {
	maker, _ := token.NewJWTMaker(testSecretKey)

	tokenString, _, err := maker.CreateToken("user1", "admin", -time.Minute)
	if err != nil {
		t.Fatalf("failed to create token: %v", err)
	}

	if _, err = maker.VerifyToken(tokenString); !errors.Is(err, token.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTMaker_TamperedToken(t *testing.T) {
	maker, _ := token.NewJWTMaker(testSecretKey)

	tokenString, _, _ := maker.CreateToken("user1", "staff", time.Minute)
	tampered := strings.Replace(tokenString, ".", "x", 1)

	if _, err := maker.VerifyToken(tampered); !errors.Is(err, token.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTMaker_ShortSecretRejected(t *testing.T) {
	if _, err := token.NewJWTMaker("too-short"); err == nil {
		t.Fatal("expected an error for a short secret key")
	}
}
