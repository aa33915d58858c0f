package mongostorex

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/zap"

	"github.com/docstorekit/docwritex"
	"github.com/docstorekit/docwritex/zaputils"
)

type StoreOptions struct {
	Logger *zap.Logger

	// Client is an already-connected mongo client. The store does not
	// manage the client's lifecycle.
	Client *mongo.Client
}

// Store adapts a MongoDB client to the docwritex StoreDriver contract.
// MongoDB cannot take part in the pipeline's enclosing transaction, which is
// the situation the coordinator's deferred write path exists for.
type Store struct {
	logger *zap.Logger
	client *mongo.Client
}

var _ docwritex.StoreDriver = (*Store)(nil)

func NewStore(opts *StoreOptions) (*Store, error) {
	if opts == nil {
		return nil, errors.New("options must be specified")
	}
	if opts.Client == nil {
		return nil, errors.New("a mongo client is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store{
		logger: logger,
		client: opts.Client,
	}, nil
}

// WriteDocuments inserts docs into the named collection as a single ordered
// insert-many carrying the write concern for level.
func (s *Store) WriteDocuments(
	ctx context.Context,
	storeName, collectionName string,
	docs []docwritex.Document,
	level docwritex.DurabilityLevel,
) error {
	wc, err := writeConcernForLevel(level)
	if err != nil {
		return err
	}

	var collOpts []*options.CollectionOptions
	if wc != nil {
		collOpts = append(collOpts, options.Collection().SetWriteConcern(wc))
	}

	coll := s.client.Database(storeName).Collection(collectionName, collOpts...)

	items := make([]interface{}, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc)
	}

	_, err = coll.InsertMany(ctx, items, options.InsertMany().SetOrdered(true))
	if err != nil {
		return errors.Wrapf(err, "failed to insert %d documents into %s.%s",
			len(docs), storeName, collectionName)
	}

	s.logger.Debug("wrote documents",
		zaputils.StoreName("database", storeName),
		zaputils.CollectionName("collection", collectionName),
		zap.Int("numDocuments", len(docs)),
		zap.Stringer("durabilityLevel", level))

	return nil
}

// DefaultDurability reports the durability level implied by the database's
// configured write concern. A database without an explicit write concern
// reports acknowledged, matching the server default.
func (s *Store) DefaultDurability(
	ctx context.Context,
	storeName, collectionName string,
) (docwritex.DurabilityLevel, error) {
	wc := s.client.Database(storeName).WriteConcern()
	return levelForWriteConcern(wc), nil
}

func writeConcernForLevel(level docwritex.DurabilityLevel) (*writeconcern.WriteConcern, error) {
	switch level {
	case docwritex.DurabilityLevelUnknown:
		return nil, nil
	case docwritex.DurabilityLevelNone:
		return writeconcern.Unacknowledged(), nil
	case docwritex.DurabilityLevelAcknowledged:
		return writeconcern.W1(), nil
	case docwritex.DurabilityLevelMajority:
		return writeconcern.Majority(), nil
	}
	return nil, errors.Errorf("unsupported durability level: %d", level)
}

func levelForWriteConcern(wc *writeconcern.WriteConcern) docwritex.DurabilityLevel {
	if wc == nil {
		return docwritex.DurabilityLevelAcknowledged
	}

	switch w := wc.W.(type) {
	case string:
		if w == "majority" {
			return docwritex.DurabilityLevelMajority
		}
	case int:
		switch {
		case w <= 0:
			return docwritex.DurabilityLevelNone
		case w == 1:
			return docwritex.DurabilityLevelAcknowledged
		default:
			// Any fixed number of replicas beyond the primary is at least as
			// strong as the acknowledged level; treat it as replicated.
			return docwritex.DurabilityLevelMajority
		}
	}

	return docwritex.DurabilityLevelAcknowledged
}
