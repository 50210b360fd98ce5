// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package daybook

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taibuivan/daybook/internal/platform/apperr"
	"github.com/taibuivan/daybook/pkg/uuidv7"
)

// LinkClaims is the payload of a signed download link.
type LinkClaims struct {
	jwt.RegisteredClaims
	StartDate string `json:"sd"`
	Weeks     int    `json:"wk"`
	Title     string `json:"tt,omitempty"`
}

// LinkSigner issues and verifies HS256 download tokens.
//
// Links are stateless: everything needed to re-render the document travels
// inside the token, so any API instance sharing the secret can serve it.
type LinkSigner struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewLinkSigner returns nil when secret is empty, which disables links.
func NewLinkSigner(secret, issuer string) *LinkSigner {
	if secret == "" {
		return nil
	}
	return &LinkSigner{secret: []byte(secret), issuer: issuer, now: time.Now}
}

// Sign creates a token for req that expires after timeToLive.
func (signer *LinkSigner) Sign(req Request, timeToLive time.Duration) (string, time.Time, error) {
	currentTime := signer.now()
	expiresAt := currentTime.Add(timeToLive)

	claims := LinkClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuidv7.New(),
			Issuer:    signer.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		StartDate: req.StartDate,
		Weeks:     req.Weeks,
		Title:     req.Title,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(signer.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("links: failed to sign token: %w", err)
	}

	return signedToken, expiresAt, nil
}

// Verify checks the signature, issuer and expiry of tokenString and returns
// the request it carries.
func (signer *LinkSigner) Verify(tokenString string) (Request, error) {
	token, err := jwt.ParseWithClaims(tokenString, &LinkClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("links: unexpected signing method: %v", token.Header["alg"])
		}
		return signer.secret, nil
	},
		jwt.WithIssuer(signer.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(signer.now),
	)

	if err != nil {
		linkErr := apperr.Unauthorized("Invalid download link")
		if errors.Is(err, jwt.ErrTokenExpired) {
			linkErr = apperr.Unauthorized("Download link has expired")
		}
		linkErr.Cause = err
		return Request{}, linkErr
	}

	claims, ok := token.Claims.(*LinkClaims)
	if !ok || !token.Valid {
		return Request{}, apperr.Unauthorized("Invalid download link")
	}

	return Request{StartDate: claims.StartDate, Weeks: claims.Weeks, Title: claims.Title}, nil
}
