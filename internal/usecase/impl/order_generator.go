// Package impl implements the order-generation use case.
package impl

import (
	"fmt"
	"math/rand"
	"time"

	"ordergen/config"
	"ordergen/internal/domain/entity"
	"ordergen/internal/domain/repository"
	"ordergen/internal/domain/saledate"
	"ordergen/internal/infra/catalog"
	"ordergen/internal/usecase"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// giftWrapPercent is the chance of an order requesting gift wrapping.
const giftWrapPercent = 20

// Bounds on the uniformly sampled sales-tax and shipping-cost rates.
const (
	minRate = 0.01
	maxRate = 0.10
)

// Estimated delivery lands between 3 and 30 days after the order date.
const (
	minDeliveryDays = 3
	maxDeliveryDays = 30
)

type orderGenerator struct {
	cfg      *config.Config
	products []entity.Product
	anchor   time.Time

	// rng and faker drive every sampled field. Both advance with each
	// produced order, which is what makes streams non-restartable.
	rng   *rand.Rand
	faker *gofakeit.Faker

	payment  []weightedVariant
	shipping []weightedVariant
	coupons  []coupon

	seq int
}

type coupon struct {
	code string
	rate decimal.Decimal
}

// NewOrderGenerator validates the configuration, eagerly loads the
// catalog and computes the sale anchor date. The returned generator
// stays usable for its whole lifetime; it is not safe for concurrent
// use without external synchronization.
func NewOrderGenerator(cfg *config.Config, repo repository.CatalogRepository) (usecase.OrderUsecase, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	products, err := repo.Load()
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, catalog.ErrEmptyCatalog
	}

	// Weekday already validated by cfg.Validate.
	weekday, _ := config.ParseWeekday(cfg.SaleDate.Weekday)
	rule := saledate.Rule{
		Month:   time.Month(cfg.SaleDate.Month),
		Week:    cfg.SaleDate.Week,
		Weekday: weekday,
	}

	seed := cfg.Generator.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &orderGenerator{
		cfg:      cfg,
		products: products,
		anchor:   saledate.Next(time.Now(), rule),
		rng:      rand.New(rand.NewSource(seed)),
		faker:    gofakeit.New(seed),
		payment:  sortedVariants(cfg.Weights.Payment),
		shipping: sortedVariants(cfg.Weights.Shipping),
		coupons:  sortedCoupons(cfg.Coupons),
	}, nil
}

// GenerateOrders returns a fresh stream of exactly TotalOrders orders.
func (g *orderGenerator) GenerateOrders() *usecase.OrderStream {
	return usecase.NewOrderStream(g.cfg.Generator.TotalOrders, g.generateOrder)
}

// AnchorDate returns the computed sale date.
func (g *orderGenerator) AnchorDate() time.Time {
	return g.anchor
}

// generateOrder assembles one order. Every random draw comes from the
// generator's seeded sources in a fixed sequence, so identically seeded
// generators produce identical orders.
func (g *orderGenerator) generateOrder() *entity.Order {
	g.seq++

	// Each produced order maps to exactly one unit of the configured
	// total; the user is drawn uniformly from 1..MaxUsers.
	userID := 1 + g.rng.Intn(g.cfg.Generator.MaxUsers)
	subscriber := g.chance(g.cfg.Weights.SubscriberPercent)

	items, total := g.generateItems()

	payment := entity.PaymentMethod(pickVariant(g.rng, g.payment))
	shipping := entity.ShippingMethod(pickVariant(g.rng, g.shipping))

	orderedAt := g.jitteredTimestamp()
	couponCode, couponValue := g.applyCoupon(total)
	salesTax := total.Mul(g.randomRate()).Round(2)
	giftWrap := g.chance(giftWrapPercent)

	shippingCost := decimal.Zero
	if !subscriber {
		shippingCost = total.Mul(g.randomRate()).Round(2)
	}

	deliveryDays := minDeliveryDays + g.rng.Intn(maxDeliveryDays-minDeliveryDays+1)

	return &entity.Order{
		OrderNumber:       g.seq,
		OrderID:           g.orderID(),
		UserID:            userID,
		Subscriber:        subscriber,
		OrderedAt:         orderedAt,
		Items:             items,
		Payment:           payment,
		Shipping:          shipping,
		Total:             total,
		CouponCode:        couponCode,
		CouponValue:       couponValue,
		SalesTax:          salesTax,
		GiftWrap:          giftWrap,
		ShippingCost:      shippingCost,
		EstimatedDelivery: orderedAt.AddDate(0, 0, deliveryDays),
		Platform:          g.faker.UserAgent(),
		NetTotal:          total.Sub(couponValue).Sub(salesTax).Sub(shippingCost),
	}
}

// generateItems picks a non-empty subset of distinct catalog products
// with random quantities and returns the lines with their summed total.
func (g *orderGenerator) generateItems() ([]entity.OrderItem, decimal.Decimal) {
	maxItems := g.cfg.Generator.MaxItemsPerOrder
	if maxItems > len(g.products) {
		maxItems = len(g.products)
	}
	count := 1 + g.rng.Intn(maxItems)

	items := make([]entity.OrderItem, 0, count)
	total := decimal.Zero
	for _, idx := range g.rng.Perm(len(g.products))[:count] {
		product := g.products[idx]
		quantity := 1 + g.rng.Intn(g.cfg.Generator.MaxQuantity)

		items = append(items, entity.OrderItem{
			ProductID: product.ID,
			Quantity:  quantity,
			UnitPrice: product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(quantity))))
	}

	return items, total
}

// jitteredTimestamp places the order within ±JitterDays of the anchor,
// reflecting pre- and post-sale ordering behavior.
func (g *orderGenerator) jitteredTimestamp() time.Time {
	windowSeconds := int64(g.cfg.Generator.JitterDays) * 24 * 60 * 60
	if windowSeconds == 0 {
		return g.anchor
	}
	offset := g.rng.Int63n(2*windowSeconds+1) - windowSeconds

	return g.anchor.Add(time.Duration(offset) * time.Second)
}

func (g *orderGenerator) applyCoupon(total decimal.Decimal) (string, decimal.Decimal) {
	if len(g.coupons) == 0 || !g.chance(g.cfg.Weights.CouponAppliedPercent) {
		return "", decimal.Zero
	}

	chosen := g.coupons[g.rng.Intn(len(g.coupons))]

	return chosen.code, total.Mul(chosen.rate).Round(2)
}

// randomRate samples a uniform rate in [minRate, maxRate] rounded to two
// decimal places.
func (g *orderGenerator) randomRate() decimal.Decimal {
	rate := minRate + g.rng.Float64()*(maxRate-minRate)

	return decimal.NewFromFloat(rate).Round(2)
}

// chance rolls a percent-out-of-100 probability.
func (g *orderGenerator) chance(percent int) bool {
	return g.rng.Intn(100) < percent
}

// orderID builds "<year>-<month>-<uuid>" from the anchor date. The UUID
// bytes come from the generator's own random source so that seeded runs
// stay reproducible.
func (g *orderGenerator) orderID() string {
	id := uuid.Must(uuid.NewRandomFromReader(g.rng))

	return fmt.Sprintf("%d-%d-%s", g.anchor.Year(), int(g.anchor.Month()), id)
}
