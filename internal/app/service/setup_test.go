package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ikkim/winecraft-backend/internal/app/repository"
	"github.com/ikkim/winecraft-backend/internal/storage"
	"github.com/ikkim/winecraft-backend/pkg/payment/gcash"
	"github.com/stretchr/testify/require"
)

type publishedEvent struct {
	topic       string
	key         string
	event       any
	ctxErr      error
	hasDeadline bool
}

// recordingPublisher keeps every event it is handed. With block set it
// waits for the publish context to end, like a writer facing dead brokers.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
	block  bool
}

func (p *recordingPublisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	_, hasDeadline := ctx.Deadline()
	recorded := publishedEvent{topic: topic, key: key, event: event, ctxErr: ctx.Err(), hasDeadline: hasDeadline}

	if p.block {
		<-ctx.Done()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, recorded)
	if p.block {
		return ctx.Err()
	}
	return p.err
}

func (p *recordingPublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.events)
}

func (p *recordingPublisher) Close() error { return nil }

func setupCatalog(t *testing.T) repository.CatalogRepository {
	catalog, err := repository.NewCatalogRepository(repository.CatalogOptions{})
	require.NoError(t, err)
	return catalog
}

func setupSelectionManager(t *testing.T) *SelectionManager {
	catalog := setupCatalog(t)
	return NewSelectionManager(catalog, NewCompatibilityChecker(catalog))
}

type storefront struct {
	catalog      repository.CatalogRepository
	sessions     SessionService
	catalogSvc   CatalogService
	checkout     *checkoutService
	cart         CartService
	favorites    FavoritesService
	configurator ConfiguratorService
	handoffs     *repository.MemorySnapshotRepository
	publisher    *recordingPublisher
}

func setupStorefront(t *testing.T) *storefront {
	catalog := setupCatalog(t)
	checker := NewCompatibilityChecker(catalog)
	pricing := NewPricingEngine(catalog)

	gcashClient, err := gcash.NewClient(gcash.Config{AccountName: "Shekar Wine Co.", AccountNumber: "+63 917 123 4567"})
	require.NoError(t, err)

	handoffs := repository.NewMemorySnapshotRepository()
	publisher := &recordingPublisher{}
	checkout := NewCheckoutService(handoffs, repository.NewMemorySnapshotRepository(), gcashClient, publisher, CheckoutConfig{
		HandoffTTL:          30 * time.Minute,
		ConfirmationTTL:     24 * time.Hour,
		StandardDeliveryFee: 100,
		ExpressDeliveryFee:  200,
		MealCost:            50,
		OrderTopic:          "winecraft.orders.confirmed",
		PublicBaseURL:       "http://localhost:8080/",
	}).(*checkoutService)

	catalogSvc := NewCatalogService(catalog, storage.NewStaticResolver("http://cdn.test/assets"))

	return &storefront{
		catalog:      catalog,
		sessions:     NewSessionService(catalog, checker, time.Hour),
		catalogSvc:   catalogSvc,
		checkout:     checkout,
		cart:         NewCartService(catalogSvc, checkout),
		favorites:    NewFavoritesService(catalogSvc),
		configurator: NewConfiguratorService(catalog, pricing, checkout),
		handoffs:     handoffs,
		publisher:    publisher,
	}
}
