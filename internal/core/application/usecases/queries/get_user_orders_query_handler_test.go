package queries_test

import (
	"context"
	"testing"
	"time"

	"orderprocessing/internal/adapters/out/postgres/orderrepo"
	"orderprocessing/internal/core/application/usecases/queries"
	"orderprocessing/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetUserOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetUserOrdersQueryHandler
	store     *orderrepo.GormOrderStore
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.handler = queries.NewGetUserOrdersQueryHandler(db)
	suite.store = orderrepo.NewGormOrderStore(db)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_ReturnsUserOrdersWithOutcome() {
	ctx := context.Background()

	first, _ := order.NewOrder(2, order.TypeB, 80, true)
	second, _ := order.NewOrder(1, order.TypeA, 250, false)
	foreign, _ := order.NewOrder(3, order.TypeC, 5, true)
	suite.Require().NoError(suite.store.Add(ctx, 10, first))
	suite.Require().NoError(suite.store.Add(ctx, 10, second))
	suite.Require().NoError(suite.store.Add(ctx, 11, foreign))

	_, err := suite.store.UpdateStatus(ctx, 1, order.Exported, order.High)
	suite.Require().NoError(err)

	query, err := queries.NewGetUserOrdersQuery(10)
	suite.Require().NoError(err)

	orders, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)

	suite.Equal(queries.GetUserOrdersQueryResponse{
		ID:       1,
		Type:     order.TypeA,
		Amount:   250,
		Flag:     false,
		Status:   order.Exported,
		Priority: order.High,
	}, orders[0])
	suite.Equal(int64(2), orders[1].ID)
	suite.Equal(order.New, orders[1].Status)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_NoOrders_ReturnsEmptySlice() {
	query, err := queries.NewGetUserOrdersQuery(10)
	suite.Require().NoError(err)

	orders, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *GetUserOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	_, err := suite.handler.Handle(context.Background(), queries.GetUserOrdersQuery{})

	suite.Require().ErrorIs(err, queries.ErrGetUserOrdersQueryIsNotConstructed)
}

func TestGetUserOrdersQueryHandlerTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(GetUserOrdersQueryHandlerTestSuite))
}
