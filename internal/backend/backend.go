// Package backend builds the storage backend selected by configuration.
package backend

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"

	"github.com/drivedrop/service/internal/config"
	"github.com/drivedrop/service/internal/credentials"
	"github.com/drivedrop/service/internal/storage"
)

// Opener returns a storage.Opener for cfg.StorageBackend. Drive credentials
// are resolved inside the opener, so wrapping it in storage.Lazy resolves
// them once per process.
func Opener(cfg *config.Config, log logrus.FieldLogger) storage.Opener {
	switch cfg.StorageBackend {
	case config.BackendMinio:
		return func(ctx context.Context) (storage.Storage, error) {
			return storage.NewMinioStorage(ctx, storage.MinioOptions{
				Endpoint:   cfg.StorageEndpoint,
				AccessKey:  cfg.StorageAccessKey,
				SecretKey:  cfg.StorageSecretKey,
				Bucket:     cfg.StorageBucket,
				Prefix:     cfg.StoragePrefix,
				PublicBase: cfg.StoragePublicBase,
				UseSSL:     cfg.StorageUseSSL,
			}, log)
		}
	default:
		resolver := credentials.NewResolver(credentials.Inputs{
			Path:    cfg.CredentialsPath,
			JSON:    cfg.CredentialsJSON,
			Content: cfg.CredentialsContent,
		}, log)

		return func(ctx context.Context) (storage.Storage, error) {
			creds, src, err := resolver.Resolve(ctx)
			if err != nil {
				return nil, err
			}
			log.WithField("source", src).Debug("drive credentials resolved")

			s, err := storage.NewDriveStorage(ctx, cfg.DriveFolderID, option.WithCredentials(creds))
			if err != nil {
				return nil, fmt.Errorf("open drive storage: %w", err)
			}
			return s, nil
		}
	}
}
