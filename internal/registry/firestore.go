// Package registry stores named configuration presets in Firestore so a team
// can share one stack definition across machines.
package registry

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"github.com/eduardo/stackgen/internal/domain"
)

const defaultCollection = "stackgen_presets"

// Options configures the Firestore connection. Empty fields fall back to the
// STACKGEN_FIRESTORE_PROJECT environment variable and Application Default
// Credentials.
type Options struct {
	ProjectID       string
	CredentialsFile string
	Collection      string
}

// Store implements domain.PresetStorePort on top of Firestore.
type Store struct {
	client     *firestore.Client
	collection string
}

// presetDoc is the wire shape of one stored preset. The configuration is kept
// as its JSON encoding so the raw toggle values survive the round trip intact.
type presetDoc struct {
	Name      string    `firestore:"name"`
	Schema    string    `firestore:"schema"`
	Config    string    `firestore:"config"`
	UpdatedAt time.Time `firestore:"updated_at"`
}

// New connects to Firestore and returns a preset store.
func New(ctx context.Context, opts Options) (*Store, error) {
	projectID := opts.ProjectID
	if projectID == "" {
		projectID = os.Getenv("STACKGEN_FIRESTORE_PROJECT")
	}
	if projectID == "" {
		return nil, fmt.Errorf("no Firestore project configured: set STACKGEN_FIRESTORE_PROJECT or pass --project")
	}

	var clientOpts []option.ClientOption
	if opts.CredentialsFile != "" {
		clientOpts = append(clientOpts, option.WithCredentialsFile(opts.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: projectID}, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("error initializing app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("error initializing firestore: %w", err)
	}

	collection := opts.Collection
	if collection == "" {
		collection = defaultCollection
	}

	return &Store{client: client, collection: collection}, nil
}

// Push stores the configuration under the given preset name, overwriting any
// previous version.
func (s *Store) Push(ctx context.Context, name string, config *domain.Config) error {
	encoded, err := json.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode preset: %w", err)
	}

	_, err = s.client.Collection(s.collection).Doc(name).Set(ctx, presetDoc{
		Name:      name,
		Schema:    string(config.Schema),
		Config:    string(encoded),
		UpdatedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to store preset %q: %w", name, err)
	}
	return nil
}

// Pull fetches a preset by name.
func (s *Store) Pull(ctx context.Context, name string) (*domain.Config, error) {
	snapshot, err := s.client.Collection(s.collection).Doc(name).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch preset %q: %w", name, err)
	}

	var doc presetDoc
	if err := snapshot.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("preset %q has an unexpected shape: %w", name, err)
	}

	var config domain.Config
	if err := json.Unmarshal([]byte(doc.Config), &config); err != nil {
		return nil, fmt.Errorf("preset %q holds invalid configuration JSON: %w", name, err)
	}
	return &config, nil
}

// List enumerates the stored presets without their configurations.
func (s *Store) List(ctx context.Context) ([]domain.PresetInfo, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	var presets []domain.PresetInfo
	for {
		snapshot, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list presets: %w", err)
		}

		var doc presetDoc
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("preset %q has an unexpected shape: %w", snapshot.Ref.ID, err)
		}
		presets = append(presets, domain.PresetInfo{
			Name:      doc.Name,
			Schema:    domain.Schema(doc.Schema),
			UpdatedAt: doc.UpdatedAt.Unix(),
		})
	}
	return presets, nil
}

// Close releases the Firestore client.
func (s *Store) Close() error {
	if s.client != nil {
		return s.client.Close()
	}
	return nil
}
