// Package firestore stores likes and selections as Firestore documents.
package firestore

import (
	"context"
	"log/slog"

	"lunchradar/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// NewClient initializes a Firebase app from cfg and returns its Firestore client.
// Without a credentials path the application default credentials (or the emulator) are used.
func NewClient(ctx context.Context, cfg *config.FirebaseConfig, logger *slog.Logger) (*firestore.Client, error) {
	if cfg == nil {
		return nil, errors.New("firebase configuration is required for the firestore provider")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	logger.Info("Firestore client initialized", slog.String("project_id", cfg.ProjectID))

	return client, nil
}
