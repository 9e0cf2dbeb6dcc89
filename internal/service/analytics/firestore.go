package analytics

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/forgefolio/forgefolio/internal/platform/timeutil"
)

const (
	analyticsCollection = "analytics"
	countersDoc         = "counters"
)

// firestoreCounters is the stored document shape.
type firestoreCounters struct {
	TotalGenerations int            `firestore:"total_generations"`
	TemplatesUsed    map[string]int `firestore:"templates_used"`
	Professions      map[string]int `firestore:"professions"`
	DailyStats       map[string]int `firestore:"daily_stats"`
	FeaturesUsed     map[string]int `firestore:"features_used"`
	StartDate        time.Time      `firestore:"start_date"`
	LastUpdated      time.Time      `firestore:"last_updated"`
}

func toFirestore(c Counters) firestoreCounters {
	return firestoreCounters{
		TotalGenerations: c.TotalGenerations,
		TemplatesUsed:    c.TemplatesUsed,
		Professions:      c.Professions,
		DailyStats:       c.DailyStats,
		FeaturesUsed:     c.FeaturesUsed,
		StartDate:        c.StartDate.UTC(),
		LastUpdated:      c.LastUpdated.UTC(),
	}
}

func fromFirestore(fc firestoreCounters, now time.Time) Counters {
	c := Counters{
		TotalGenerations: fc.TotalGenerations,
		TemplatesUsed:    fc.TemplatesUsed,
		Professions:      fc.Professions,
		DailyStats:       fc.DailyStats,
		FeaturesUsed:     fc.FeaturesUsed,
		StartDate:        timeutil.NewTime(fc.StartDate),
		LastUpdated:      timeutil.NewTime(fc.LastUpdated),
	}
	c.normalize(now)
	return c
}

// FirestoreStore persists counters in a single Firestore document mutated
// inside a transaction.
type FirestoreStore struct {
	client *firestore.Client
	now    func() time.Time
}

// NewFirestoreStore creates a store backed by the given Firestore client.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client, now: time.Now}
}

func (s *FirestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection(analyticsCollection).Doc(countersDoc)
}

// Load implements Store.
func (s *FirestoreStore) Load(ctx context.Context) (Counters, error) {
	doc, err := s.doc().Get(ctx)
	if status.Code(err) == codes.NotFound {
		return NewCounters(s.now()), nil
	}
	if err != nil {
		return Counters{}, fmt.Errorf("loading analytics counters: %w", err)
	}
	var fc firestoreCounters
	if err := doc.DataTo(&fc); err != nil {
		return Counters{}, fmt.Errorf("decoding analytics counters: %w", err)
	}
	return fromFirestore(fc, s.now()), nil
}

// IncrementAndSave implements Store.
func (s *FirestoreStore) IncrementAndSave(ctx context.Context, ev Event) error {
	err := s.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		now := s.now()
		c := NewCounters(now)
		doc, err := tx.Get(s.doc())
		switch {
		case status.Code(err) == codes.NotFound:
			// first event seeds the document
		case err != nil:
			return err
		default:
			var fc firestoreCounters
			if err := doc.DataTo(&fc); err != nil {
				return err
			}
			c = fromFirestore(fc, now)
		}
		c.apply(ev, now)
		return tx.Set(s.doc(), toFirestore(c))
	})
	if err != nil {
		return fmt.Errorf("saving analytics counters: %w", err)
	}
	return nil
}

var _ Store = (*FirestoreStore)(nil)
