// Package credentials resolves the Google service account used to talk to Drive.
package credentials

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2/google"

	"github.com/drivedrop/service/internal/apperr"
)

// DriveScope grants full access to the caller's Drive files.
const DriveScope = "https://www.googleapis.com/auth/drive"

// Source names the input the credentials were loaded from.
type Source string

const (
	SourceFile    Source = "GOOGLE_SERVICE_ACCOUNT_PATH"
	SourceKey     Source = "GOOGLE_SERVICE_ACCOUNT_KEY"
	SourceContent Source = "GOOGLE_SERVICE_ACCOUNT_CONTENT"
)

// Inputs are the three candidate credential sources, highest priority first.
type Inputs struct {
	Path    string // filesystem path to a service account JSON file
	JSON    string // inline service account JSON
	Content string // raw service account file content
}

// Resolver turns Inputs into Drive-scoped credentials.
type Resolver struct {
	in  Inputs
	log logrus.FieldLogger
}

// NewResolver creates a Resolver for the given inputs.
func NewResolver(in Inputs, log logrus.FieldLogger) *Resolver {
	return &Resolver{in: in, log: log}
}

// Resolve tries the file path, then the inline JSON, then the raw content.
// The first configured source wins; a source that is configured but unusable
// is a configuration error, except for a path that does not exist, which is skipped.
func (r *Resolver) Resolve(ctx context.Context) (*google.Credentials, Source, error) {
	if r.in.Path != "" {
		data, err := os.ReadFile(r.in.Path)
		switch {
		case err == nil:
			creds, err := fromJSON(ctx, data, SourceFile)
			if err != nil {
				return nil, "", err
			}
			r.log.WithField("path", r.in.Path).Info("loaded credentials from file")
			return creds, SourceFile, nil
		case errors.Is(err, os.ErrNotExist):
			r.log.WithField("path", r.in.Path).Warn("credentials file not found, trying next source")
		default:
			return nil, "", apperr.Configuration("read %s: %w", SourceFile, err)
		}
	}

	if r.in.JSON != "" {
		if !json.Valid([]byte(r.in.JSON)) {
			return nil, "", apperr.New(apperr.KindConfiguration, "Invalid JSON in "+string(SourceKey), nil)
		}
		creds, err := fromJSON(ctx, []byte(r.in.JSON), SourceKey)
		if err != nil {
			return nil, "", err
		}
		r.log.Info("loaded credentials from environment variable")
		return creds, SourceKey, nil
	}

	if r.in.Content != "" {
		creds, err := fromJSON(ctx, []byte(r.in.Content), SourceContent)
		if err != nil {
			return nil, "", err
		}
		r.log.Info("loaded credentials from raw content")
		return creds, SourceContent, nil
	}

	return nil, "", apperr.New(apperr.KindConfiguration,
		fmt.Sprintf("No Google credentials found. Please set %s, %s or %s", SourceFile, SourceKey, SourceContent), nil)
}

func fromJSON(ctx context.Context, data []byte, src Source) (*google.Credentials, error) {
	creds, err := google.CredentialsFromJSON(ctx, data, DriveScope)
	if err != nil {
		return nil, apperr.Configuration("invalid service account in %s: %w", src, err)
	}
	return creds, nil
}
