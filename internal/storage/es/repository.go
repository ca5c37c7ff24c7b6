// Package es backs the repository with a single Elasticsearch index in
// which events and bookings share a container, discriminated by a
// doc_type field. This mirrors the one-container document-store layout
// the command language was originally written against.
package es

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/refresh"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/result"

	"github.com/quicktix/quicktix/internal/domain"
	"github.com/quicktix/quicktix/internal/storage"
)

const (
	docTypeEvent   = "event"
	docTypeBooking = "booking"

	// searchLimit bounds predicate queries; operator commands never
	// page, so one sufficiently large window is enough.
	searchLimit = 1000
)

type eventDoc struct {
	DocType string `json:"doc_type"`
	domain.Event
}

type bookingDoc struct {
	DocType string `json:"doc_type"`
	domain.Booking
}

type Repository struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewRepository(ctx context.Context, config ClientConfig) (*Repository, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	r := &Repository{
		client:    client,
		indexName: config.IndexName,
	}

	if err := r.ensureIndex(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure index exists: %w", err)
	}

	return r, nil
}

func (r *Repository) FindEvents(ctx context.Context, q storage.EventQuery) ([]domain.Event, error) {
	filter := []types.Query{termQuery("doc_type", docTypeEvent, false)}

	if q.Location != "" {
		filter = append(filter, termQuery("location", q.Location, true))
	}
	if q.Title != "" {
		filter = append(filter, termQuery("title", q.Title, false))
	}
	if q.TitleContains != "" {
		pattern := "*" + q.TitleContains + "*"
		filter = append(filter, types.Query{
			Wildcard: map[string]types.WildcardQuery{
				"title": {Value: &pattern},
			},
		})
	}
	if q.StartDate != "" {
		filter = append(filter, termQuery("startDate", q.StartDate, false))
	}

	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{Bool: &types.BoolQuery{Filter: filter}}).
		Size(searchLimit).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute event query: %w", err)
	}

	var events []domain.Event
	for _, hit := range res.Hits.Hits {
		var doc eventDoc
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal event document: %w", err)
		}
		events = append(events, doc.Event)
	}
	return events, nil
}

func (r *Repository) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	res, err := r.client.Get(r.indexName, id).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc eventDoc
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event document: %w", err)
	}
	if doc.DocType != docTypeEvent {
		return nil, storage.ErrNotFound
	}
	return &doc.Event, nil
}

func (r *Repository) PutEvent(ctx context.Context, e domain.Event) error {
	doc := eventDoc{DocType: docTypeEvent, Event: e}

	res, err := r.client.Index(r.indexName).
		Id(e.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index event: %w", err)
	}

	slog.Debug("event document indexed", "id", e.ID, "index", r.indexName, "result", res.Result)
	return nil
}

func (r *Repository) DeleteEvent(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, id)
}

func (r *Repository) FindBookingByCode(ctx context.Context, code string) (*domain.Booking, error) {
	res, err := r.client.Search().
		Index(r.indexName).
		Query(&types.Query{Bool: &types.BoolQuery{Filter: []types.Query{
			termQuery("doc_type", docTypeBooking, false),
			termQuery("code", code, false),
		}}}).
		Size(1).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute booking query: %w", err)
	}

	if len(res.Hits.Hits) == 0 {
		return nil, storage.ErrNotFound
	}

	var doc bookingDoc
	if err := json.Unmarshal(res.Hits.Hits[0].Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking document: %w", err)
	}
	return &doc.Booking, nil
}

func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	res, err := r.client.Get(r.indexName, id).Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	if !res.Found {
		return nil, storage.ErrNotFound
	}

	var doc bookingDoc
	if err := json.Unmarshal(res.Source_, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal booking document: %w", err)
	}
	if doc.DocType != docTypeBooking {
		return nil, storage.ErrNotFound
	}
	return &doc.Booking, nil
}

func (r *Repository) PutBooking(ctx context.Context, b domain.Booking) error {
	doc := bookingDoc{DocType: docTypeBooking, Booking: b}

	res, err := r.client.Index(r.indexName).
		Id(b.ID).
		Document(doc).
		Refresh(refresh.True).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to index booking: %w", err)
	}

	slog.Debug("booking document indexed", "id", b.ID, "index", r.indexName, "result", res.Result)
	return nil
}

func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	return r.deleteDoc(ctx, id)
}

func (r *Repository) deleteDoc(ctx context.Context, id string) error {
	res, err := r.client.Delete(r.indexName, id).Refresh(refresh.True).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	if res.Result == result.Notfound {
		return storage.ErrNotFound
	}
	return nil
}

func termQuery(field, value string, caseInsensitive bool) types.Query {
	tq := types.TermQuery{Value: value}
	if caseInsensitive {
		ci := true
		tq.CaseInsensitive = &ci
	}
	return types.Query{Term: map[string]types.TermQuery{field: tq}}
}

func (r *Repository) ensureIndex(ctx context.Context) error {
	exists, err := r.client.Indices.Exists(r.indexName).Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to check if index exists: %w", err)
	}

	if exists {
		slog.Info("Index already exists", "index", r.indexName)
		return nil
	}

	mappings := types.TypeMapping{
		Properties: map[string]types.Property{
			"doc_type":          types.NewKeywordProperty(),
			"id":                types.NewKeywordProperty(),
			"type":              types.NewKeywordProperty(),
			"title":             types.NewKeywordProperty(),
			"venue":             types.NewKeywordProperty(),
			"location":          types.NewKeywordProperty(),
			"startDate":         types.NewKeywordProperty(),
			"endDate":           types.NewKeywordProperty(),
			"priceMin":          types.NewDoubleNumberProperty(),
			"priceMax":          types.NewDoubleNumberProperty(),
			"available_tickets": types.NewIntegerNumberProperty(),
			"code":              types.NewKeywordProperty(),
			"event_id":          types.NewKeywordProperty(),
			"user":              types.NewKeywordProperty(),
			"date":              types.NewKeywordProperty(),
			"quantity":          types.NewIntegerNumberProperty(),
			"status":            types.NewKeywordProperty(),
		},
	}

	createRes, err := r.client.Indices.Create(r.indexName).
		Mappings(&mappings).
		Do(ctx)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	if !createRes.Acknowledged {
		return fmt.Errorf("index creation was not acknowledged")
	}

	slog.Info("Index created successfully", "index", r.indexName)
	return nil
}
