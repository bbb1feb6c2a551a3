package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetOrderQueryHandlerTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	handler    queries.GetOrderQueryHandler
}

func (suite *GetOrderQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.BasketDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.LogoDTO{},
		&orderrepo.ImageDTO{},
	)
	suite.Require().NoError(err)

	suite.repository = orderrepo.NewGormOrderRepository(db)
	suite.handler = queries.NewGetOrderQueryHandler(db, nil)
}

func (suite *GetOrderQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetOrderQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_baskets, order_items, order_logos, order_images").Error
	suite.Require().NoError(err)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_ExistingOrder_ReturnsReadModel() {
	ctx := context.Background()

	testOrder := suite.createAndSaveTestOrder()

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID().String(), result.ID)
	suite.Equal(testOrder.Code(), result.Code)
	suite.Equal("Team hoodies", result.Name)
	suite.Equal(order.Confirmed.Code(), result.Status)
	suite.Equal(order.RejectionActive.Code(), result.RejectionState)
	suite.Equal(order.ProductionNotStarted.Code(), result.ProductionStatus)
	suite.Equal("Ada Yilmaz", result.CustomerName)
	suite.Equal("+905551112233", result.CustomerPhone)
	suite.Equal(order.ShippingSenderPays.Code(), result.ShippingType)
	suite.Equal("Istanbul", result.City)
	suite.Equal(testOrder.OfferPrice().Kurus(), result.OfferPriceKurus)
	suite.Equal(int64(0), result.PaidAmountKurus)
	suite.Empty(result.ManufacturerID)
	suite.NotEmpty(result.CreatedAt)

	suite.Require().Len(result.Items, 1)
	suite.Equal("Hoodie", result.Items[0].Product)
	suite.Equal(10, result.Items[0].Quantity)
	suite.Equal(int64(85000), result.Items[0].UnitPriceKurus)
	suite.Empty(result.Images)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_OrderWithImages_IncludesLogosAndEvidence() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()

	logo, err := order.NewImage(order.ImageLogo, "logos/team.png", "image/png")
	suite.Require().NoError(err)
	testOrder.Baskets()[0].AddLogo(logo)

	err = suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	query, err := queries.NewGetOrderQuery(testOrder.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Images, 1)
	suite.Equal("logo", result.Images[0].Kind)
	suite.Equal("logos/team.png", result.Images[0].Ref)
	suite.Equal("image/png", result.Images[0].MimeType)
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.True(errors.Is(err, errs.ErrObjectNotFound))
}

func (suite *GetOrderQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	ctx := context.Background()

	_, err := suite.handler.Handle(ctx, queries.GetOrderQuery{})

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetOrderQuery constructor")
}

func (suite *GetOrderQueryHandlerTestSuite) createTestOrder() *order.Order {
	customer, err := order.NewCustomerInfo("Ada Yilmaz", "+905551112233", "ada@example.com")
	suite.Require().NoError(err)

	address, err := order.NewAddress("Moda Cad. 15", "Kadikoy", "Istanbul")
	suite.Require().NoError(err)

	unitPrice, err := kernel.NewMoney(85000)
	suite.Require().NoError(err)
	item, err := order.NewItem("Hoodie", "apparel", "unisex", "black", 10, unitPrice, order.DefaultPricingPolicy())
	suite.Require().NoError(err)

	basket := order.NewBasket()
	basket.AddItem(item)

	testOrder, err := order.NewOrder(kernel.NewUUID(), "Team hoodies", customer,
		order.ShippingSenderPays, address, basket, time.Now())
	suite.Require().NoError(err)
	return testOrder
}

func (suite *GetOrderQueryHandlerTestSuite) createAndSaveTestOrder() *order.Order {
	testOrder := suite.createTestOrder()
	err := suite.repository.Add(context.Background(), testOrder)
	suite.Require().NoError(err)
	return testOrder
}

func TestGetOrderQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderQueryHandlerTestSuite))
}
