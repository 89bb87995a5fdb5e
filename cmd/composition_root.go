package cmd

import (
	"log/slog"

	httpin "restaurant/internal/adapters/in/http"
	"restaurant/internal/adapters/out/postgres"
	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires command and query handlers onto the persistence
// layer. Handlers are cheap value objects, so each Create* call builds a
// fresh one.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreatePurgeStaleCartsCommandHandler() commands.PurgeStaleCartsCommandHandler {
	return commands.NewPurgeStaleCartsCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	var f commands.CheckoutUoWFactory = FuncCheckoutUoWFactory(func() commands.CheckoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCheckoutCommandHandler(f)
}

func (c *CompositionRoot) CreateToggleOrderStatusCommandHandler() commands.ToggleOrderStatusCommandHandler {
	return commands.NewToggleOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAssignDeliveryCrewCommandHandler() commands.AssignDeliveryCrewCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignDeliveryCrewCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateMenuItemCommandHandler() commands.CreateMenuItemCommandHandler {
	return commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateToggleFeaturedCommandHandler() commands.ToggleFeaturedCommandHandler {
	return commands.NewToggleFeaturedCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateCreateCategoryCommandHandler() commands.CreateCategoryCommandHandler {
	return commands.NewCreateCategoryCommandHandler(c.menuUoWFactory())
}

func (c *CompositionRoot) CreateAddRoleMemberCommandHandler() commands.AddRoleMemberCommandHandler {
	return commands.NewAddRoleMemberCommandHandler(c.roleUoWFactory())
}

func (c *CompositionRoot) CreateRemoveRoleMemberCommandHandler() commands.RemoveRoleMemberCommandHandler {
	return commands.NewRemoveRoleMemberCommandHandler(c.roleUoWFactory())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMenuItemsQueryHandler() queries.GetMenuItemsQueryHandler {
	return queries.NewGetMenuItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRoleMembersQueryHandler() queries.GetRoleMembersQueryHandler {
	return queries.NewGetRoleMembersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateIsRoleMemberQueryHandler() queries.IsRoleMemberQueryHandler {
	return queries.NewIsRoleMemberQueryHandler(c.gormDB)
}

// CreateHTTPServer assembles the inbound HTTP adapter with every handler
// wired in.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AddCartItem:        c.CreateAddCartItemCommandHandler(),
		RemoveCartItem:     c.CreateRemoveCartItemCommandHandler(),
		ClearCart:          c.CreateClearCartCommandHandler(),
		Checkout:           c.CreateCheckoutCommandHandler(),
		ToggleOrderStatus:  c.CreateToggleOrderStatusCommandHandler(),
		AssignDeliveryCrew: c.CreateAssignDeliveryCrewCommandHandler(),
		DeleteOrder:        c.CreateDeleteOrderCommandHandler(),
		CreateMenuItem:     c.CreateCreateMenuItemCommandHandler(),
		ToggleFeatured:     c.CreateToggleFeaturedCommandHandler(),
		CreateCategory:     c.CreateCreateCategoryCommandHandler(),
		AddRoleMember:      c.CreateAddRoleMemberCommandHandler(),
		RemoveRoleMember:   c.CreateRemoveRoleMemberCommandHandler(),

		GetCart:        c.CreateGetCartQueryHandler(),
		GetOrders:      c.CreateGetOrdersQueryHandler(),
		GetOrder:       c.CreateGetOrderQueryHandler(),
		GetMenuItems:   c.CreateGetMenuItemsQueryHandler(),
		GetCategories:  c.CreateGetCategoriesQueryHandler(),
		GetRoleMembers: c.CreateGetRoleMembersQueryHandler(),
		IsRoleMember:   c.CreateIsRoleMemberQueryHandler(),
	})
}

// CreateJobManager assembles the background job layer.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreatePurgeStaleCartsCommandHandler(),
		c.config.CartRetention,
		logger,
	)
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) roleUoWFactory() commands.RoleUoWFactory {
	return FuncRoleUoWFactory(func() commands.RoleUoW {
		return c.uowFactory.Create()
	})
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncCheckoutUoWFactory func() commands.CheckoutUoW

func (f FuncCheckoutUoWFactory) Create() commands.CheckoutUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncRoleUoWFactory func() commands.RoleUoW

func (f FuncRoleUoWFactory) Create() commands.RoleUoW {
	return f()
}
