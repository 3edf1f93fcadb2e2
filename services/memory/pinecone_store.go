package memory

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"toolfinder/models"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

// PineconeStore keeps entries in a managed Pinecone index. Vector IDs are
// prefixed with the user id so a user's vectors can be listed and deleted.
type PineconeStore struct {
	client     *pinecone.Client
	embed      EmbedFunc
	indexName  string
	namespace  string
	maxEntries int
}

func NewPineconeStore(apiKey, indexName, namespace string, embed EmbedFunc, maxEntries int) (*PineconeStore, error) {
	log.Printf("[INFO] Initializing Pinecone memory store")

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinecone client: %w", err)
	}

	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}

	log.Printf("[INFO] Pinecone memory store initialized successfully")
	return &PineconeStore{
		client:     pc,
		embed:      embed,
		indexName:  indexName,
		namespace:  namespace,
		maxEntries: maxEntries,
	}, nil
}

func (s *PineconeStore) Provider() string { return "pinecone" }

func (s *PineconeStore) Structured() bool { return false }

func (s *PineconeStore) Client() *pinecone.Client { return s.client }

func (s *PineconeStore) IndexName() string { return s.indexName }

// VectorIDPrefix is the ID prefix shared by all of a user's vectors.
func VectorIDPrefix(userID string) string {
	return fmt.Sprintf("user_%s_", userID)
}

func (s *PineconeStore) indexConnection(ctx context.Context) (*pinecone.IndexConnection, error) {
	idxDesc, err := s.client.DescribeIndex(ctx, s.indexName)
	if err != nil {
		return nil, fmt.Errorf("failed to describe index: %w", err)
	}

	idxConn, err := s.client.Index(pinecone.NewIndexConnParams{
		Host:      idxDesc.Host,
		Namespace: s.namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index connection: %w", err)
	}

	return idxConn, nil
}

func (s *PineconeStore) Add(ctx context.Context, entry models.MemoryEntry) error {
	values, err := s.embed(ctx, entry.Content)
	if err != nil {
		return fmt.Errorf("failed to generate embedding: %w", err)
	}

	metadata := map[string]any{"content": entry.Content}
	for key, value := range entryMetadata(entry) {
		metadata[key] = value
	}
	metadata["confidence_score"] = entry.ConfidenceScore

	metadataStruct, err := structpb.NewStruct(metadata)
	if err != nil {
		return fmt.Errorf("failed to create metadata struct: %w", err)
	}

	idxConn, err := s.indexConnection(ctx)
	if err != nil {
		return err
	}
	defer idxConn.Close()

	_, err = idxConn.UpsertVectors(ctx, []*pinecone.Vector{
		{
			Id:       entry.ID,
			Values:   &values,
			Metadata: metadataStruct,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to upsert vector: %w", err)
	}

	return nil
}

func (s *PineconeStore) Search(ctx context.Context, userID, query string, limit int) ([]models.MemoryEntry, error) {
	if query == "" {
		query = listAllQuery
	}
	return s.query(ctx, userID, query, limit)
}

// All approximates a listing with a broad query limited to the user's vectors.
func (s *PineconeStore) All(ctx context.Context, userID string) ([]models.MemoryEntry, error) {
	entries, err := s.query(ctx, userID, listAllQuery, s.maxEntries)
	if err != nil {
		return nil, err
	}
	sortByTimestamp(entries)
	return entries, nil
}

func (s *PineconeStore) query(ctx context.Context, userID, text string, limit int) ([]models.MemoryEntry, error) {
	vector, err := s.embed(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	filter, err := structpb.NewStruct(map[string]any{
		"user_id": map[string]any{"$eq": userID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create metadata filter: %w", err)
	}

	idxConn, err := s.indexConnection(ctx)
	if err != nil {
		return nil, err
	}
	defer idxConn.Close()

	result, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            uint32(limit),
		MetadataFilter:  filter,
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vectors: %w", err)
	}

	entries := make([]models.MemoryEntry, 0, len(result.Matches))
	for _, match := range result.Matches {
		if match.Vector == nil || match.Vector.Metadata == nil {
			continue
		}
		raw := match.Vector.Metadata.AsMap()
		metadata := make(map[string]string, len(raw))
		for key, value := range raw {
			switch v := value.(type) {
			case string:
				metadata[key] = v
			case float64:
				metadata[key] = fmt.Sprintf("%g", v)
			}
		}
		entries = append(entries, entryFromMetadata(match.Vector.Id, metadata["content"], metadata))
	}

	return entries, nil
}

// Clear lists the user's vector IDs by prefix and deletes them page by page.
func (s *PineconeStore) Clear(ctx context.Context, userID string) error {
	idxConn, err := s.indexConnection(ctx)
	if err != nil {
		return err
	}
	defer idxConn.Close()

	prefix := VectorIDPrefix(userID)
	limit := uint32(100)
	var paginationToken *string

	for {
		listResp, err := idxConn.ListVectors(ctx, &pinecone.ListVectorsRequest{
			Prefix:          &prefix,
			Limit:           &limit,
			PaginationToken: paginationToken,
		})
		if err != nil {
			if strings.Contains(err.Error(), "Namespace not found") {
				log.Printf("[INFO] Namespace does not exist yet - no vectors to delete for user %s", userID)
				return nil
			}
			return fmt.Errorf("failed to list vectors: %w", err)
		}

		ids := make([]string, 0, len(listResp.VectorIds))
		for _, id := range listResp.VectorIds {
			if id != nil {
				ids = append(ids, *id)
			}
		}

		if len(ids) > 0 {
			if err := idxConn.DeleteVectorsById(ctx, ids); err != nil {
				return fmt.Errorf("failed to delete vector batch: %w", err)
			}
			log.Printf("[INFO] Deleted %d vectors for user %s", len(ids), userID)
		}

		if listResp.NextPaginationToken == nil {
			return nil
		}
		paginationToken = listResp.NextPaginationToken
	}
}

// EnsureIndex creates the serverless index when it does not exist and waits
// until it is ready.
func EnsureIndex(ctx context.Context, pc *pinecone.Client, indexName string) error {
	indexes, err := pc.ListIndexes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	for _, idx := range indexes {
		if idx.Name == indexName {
			log.Printf("[INFO] Index %s already exists", indexName)
			return nil
		}
	}

	log.Printf("[INFO] Creating Pinecone index: %s", indexName)
	dimension := int32(1536) // OpenAI ada-002 embedding dimension
	deletionProtection := pinecone.DeletionProtectionDisabled
	metric := pinecone.Cosine

	_, err = pc.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:               indexName,
		Dimension:          &dimension,
		Metric:             &metric,
		Cloud:              pinecone.Aws,
		Region:             "us-east-1",
		DeletionProtection: &deletionProtection,
		Tags:               &pinecone.IndexTags{"project": "toolfinder-memories"},
	})
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	for {
		idx, err := pc.DescribeIndex(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to describe index: %w", err)
		}
		if idx.Status.Ready {
			log.Printf("[INFO] Index %s is ready", indexName)
			return nil
		}
		log.Printf("[INFO] Waiting for index %s to be ready...", indexName)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(10 * time.Second):
		}
	}
}
