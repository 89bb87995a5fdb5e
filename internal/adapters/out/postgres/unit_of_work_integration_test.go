package postgres_test

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/adapters/out/postgres/cartrepo"
	"restaurant/internal/adapters/out/postgres/menurepo"
	"restaurant/internal/adapters/out/postgres/orderrepo"
	"restaurant/internal/adapters/out/postgres/rolerepo"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies transaction boundaries across
// repositories, in particular that checkout's order insert and cart clear
// are atomic.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&menurepo.CategoryDTO{},
		&menurepo.MenuItemDTO{},
		&cartrepo.CartLineDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&rolerepo.UserDTO{},
		&rolerepo.RoleAssignmentDTO{},
	))

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE cart_lines, orders, order_items, menu_items, categories, users, role_assignments",
	).Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_CheckoutFlow_PersistsOrderAndClearsCart() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	suite.addCartLine(ctx, customerID, "9.00", 2)
	suite.addCartLine(ctx, customerID, "4.25", 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	customerCart, err := uow.CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	newOrder, err := services.NewCheckoutService().Checkout(customerCart, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, customerID))
	suite.Require().NoError(uow.Commit(ctx))

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().NoError(err)
	suite.Equal("22.25", retrieved.Total().String())
	suite.Equal(order.Pending, retrieved.Status())

	remaining, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(remaining.IsEmpty())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_CheckoutFlow_LeavesCartUntouched() {
	ctx := context.Background()
	customerID := kernel.NewUUID()

	suite.addCartLine(ctx, customerID, "9.00", 1)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	customerCart, err := uow.CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)

	newOrder, err := services.NewCheckoutService().Checkout(customerCart, kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, newOrder))
	suite.Require().NoError(uow.CartRepository().Clear(ctx, customerID))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err = suite.factory.Create().OrderRepository().Get(ctx, newOrder.ID())
	suite.Require().Error(err)

	remaining, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Len(remaining.Lines(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestBegin_CalledTwice_DoesNotNest() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_WithoutBegin_ReturnsError() {
	ctx := context.Background()

	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) addCartLine(
	ctx context.Context, customerID kernel.UUID, priceStr string, quantity int,
) {
	price, err := kernel.NewMoneyFromString(priceStr)
	suite.Require().NoError(err)
	line, err := cart.NewLine(kernel.NewUUID(), quantity, price)
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().AddLine(ctx, customerID, line))
	suite.Require().NoError(uow.Commit(ctx))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
