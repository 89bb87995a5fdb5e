// Package http exposes the ordering backend as a REST API over Echo.
// Handlers stay thin: they resolve the principal, check role predicates and
// delegate to command/query handlers. All error-to-status mapping lives in
// respondError.
package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/application/usecases/queries"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/roles"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers groups the command and query handlers the server dispatches to.
type Handlers struct {
	AddCartItem        commands.AddCartItemCommandHandler
	RemoveCartItem     commands.RemoveCartItemCommandHandler
	ClearCart          commands.ClearCartCommandHandler
	Checkout           commands.CheckoutCommandHandler
	ToggleOrderStatus  commands.ToggleOrderStatusCommandHandler
	AssignDeliveryCrew commands.AssignDeliveryCrewCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	CreateMenuItem     commands.CreateMenuItemCommandHandler
	ToggleFeatured     commands.ToggleFeaturedCommandHandler
	CreateCategory     commands.CreateCategoryCommandHandler
	AddRoleMember      commands.AddRoleMemberCommandHandler
	RemoveRoleMember   commands.RemoveRoleMemberCommandHandler

	GetCart        queries.GetCartQueryHandler
	GetOrders      queries.GetOrdersQueryHandler
	GetOrder       queries.GetOrderQueryHandler
	GetMenuItems   queries.GetMenuItemsQueryHandler
	GetCategories  queries.GetCategoriesQueryHandler
	GetRoleMembers queries.GetRoleMembersQueryHandler
	IsRoleMember   queries.IsRoleMemberQueryHandler
}

// Server handles HTTP requests for the ordering backend.
type Server struct {
	handlers Handlers
}

// NewServer creates a new HTTP server dispatching to the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes wires all routes onto the given route group. The caller is
// expected to have installed AuthMiddleware on the group; every route
// assumes a resolved principal.
func (s *Server) RegisterRoutes(e *echo.Group) {
	e.GET("/menu-items", s.GetMenuItems)
	e.POST("/menu-items", s.CreateMenuItem)
	e.PATCH("/menu-items/:id", s.ToggleFeatured)
	e.GET("/menu-items/category", s.GetCategories)
	e.POST("/menu-items/category", s.CreateCategory)

	e.GET("/groups/:role/users", s.GetRoleMembers)
	e.POST("/groups/:role/users", s.AddRoleMember)
	e.DELETE("/groups/:role/users/:id", s.RemoveRoleMember)

	e.GET("/cart/menu-items", s.GetCart)
	e.POST("/cart/menu-items", s.AddCartItem)
	e.DELETE("/cart/menu-items", s.RemoveFromCart)

	e.GET("/orders", s.GetOrders)
	e.POST("/orders", s.Checkout)
	e.GET("/orders/:id", s.GetOrder)
	e.PUT("/orders/:id", s.AssignDeliveryCrew)
	e.PATCH("/orders/:id", s.ToggleOrderStatus)
	e.DELETE("/orders/:id", s.DeleteOrder)
}

type messageResponse struct {
	Message string `json:"message"`
}

type checkoutResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

type categoryResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

type menuItemResponse struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Price         string `json:"price"`
	Featured      bool   `json:"featured"`
	CategoryID    string `json:"category_id"`
	CategoryTitle string `json:"category_title"`
}

type cartResponse struct {
	Lines []cartLineResponse `json:"lines"`
	Total string             `json:"total"`
}

type cartLineResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

type orderSummaryResponse struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"customer_id"`
	DeliveryCrewID *string   `json:"delivery_crew_id"`
	Total          string    `json:"total"`
	Status         string    `json:"status"`
	Date           time.Time `json:"date"`
}

type orderDetailResponse struct {
	orderSummaryResponse
	Items []orderItemResponse `json:"items"`
}

type orderItemResponse struct {
	MenuItemID string `json:"menu_item_id"`
	Title      string `json:"title"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	Price      string `json:"price"`
}

type roleMemberResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type createCategoryRequest struct {
	Title string `json:"title"`
}

type createMenuItemRequest struct {
	Title      string `json:"title"`
	Price      string `json:"price"`
	CategoryID string `json:"category_id"`
}

type addCartItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

type addRoleMemberRequest struct {
	Username string `json:"username"`
}

type assignCrewRequest struct {
	DeliveryCrewID string `json:"delivery_crew_id"`
}

// GetMenuItems handles GET /menu-items - lists menu items with optional
// search and ordering.
func (s *Server) GetMenuItems(ctx echo.Context) error {
	query, err := queries.NewGetMenuItemsQuery(ctx.QueryParam("search"), ctx.QueryParam("ordering"))
	if err != nil {
		return respondError(ctx, err)
	}

	items, err := s.handlers.GetMenuItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]menuItemResponse, len(items))
	for i, item := range items {
		response[i] = menuItemResponse{
			ID:            item.ID.String(),
			Title:         item.Title,
			Price:         item.Price.String(),
			Featured:      item.Featured,
			CategoryID:    item.CategoryID.String(),
			CategoryTitle: item.CategoryTitle,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateMenuItem handles POST /menu-items - adds a menu item (admin only).
func (s *Server) CreateMenuItem(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}
	if !principal.IsAdmin {
		return respondForbidden(ctx)
	}

	var request createMenuItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	price, err := kernel.NewMoneyFromString(request.Price)
	if err != nil {
		return respondError(ctx, err)
	}

	categoryID, err := kernel.UUIDFromString(request.CategoryID)
	if err != nil {
		return respondBadRequest(ctx, "invalid category id")
	}

	cmd, err := commands.NewCreateMenuItemCommand(kernel.NewUUID(), request.Title, price, categoryID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateMenuItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messageResponse{Message: "menu item created"})
}

// ToggleFeatured handles PATCH /menu-items/{id} - flips the featured flag
// (manager or admin).
func (s *Server) ToggleFeatured(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	allowed, err := s.hasRole(ctx.Request().Context(), principal, roles.Manager)
	if err != nil {
		return respondError(ctx, err)
	}
	if !allowed {
		return respondForbidden(ctx)
	}

	menuItemID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewToggleFeaturedCommand(menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	featured, err := s.handlers.ToggleFeatured.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	message := "menu item is no longer featured"
	if featured {
		message = "menu item is now featured"
	}
	return ctx.JSON(http.StatusOK, messageResponse{Message: message})
}

// GetCategories handles GET /menu-items/category - lists categories.
func (s *Server) GetCategories(ctx echo.Context) error {
	query := queries.NewGetCategoriesQuery()

	categories, err := s.handlers.GetCategories.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]categoryResponse, len(categories))
	for i, category := range categories {
		response[i] = categoryResponse{
			ID:    category.ID.String(),
			Title: category.Title,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /menu-items/category - adds a category
// (admin only).
func (s *Server) CreateCategory(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}
	if !principal.IsAdmin {
		return respondForbidden(ctx)
	}

	var request createCategoryRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCreateCategoryCommand(kernel.NewUUID(), request.Title)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.CreateCategory.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messageResponse{Message: "category created"})
}

// GetRoleMembers handles GET /groups/{role}/users - lists role members.
func (s *Server) GetRoleMembers(ctx echo.Context) error {
	role, ok, err := s.authorizeRoleManagement(ctx)
	if !ok {
		return err
	}

	query, err := queries.NewGetRoleMembersQuery(role)
	if err != nil {
		return respondError(ctx, err)
	}

	members, err := s.handlers.GetRoleMembers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]roleMemberResponse, len(members))
	for i, member := range members {
		response[i] = roleMemberResponse{
			ID:       member.ID.String(),
			Username: member.Username,
			Email:    member.Email,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddRoleMember handles POST /groups/{role}/users - grants the role to a
// user looked up by username.
func (s *Server) AddRoleMember(ctx echo.Context) error {
	role, ok, err := s.authorizeRoleManagement(ctx)
	if !ok {
		return err
	}

	var request addRoleMemberRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewAddRoleMemberCommand(role, request.Username)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddRoleMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messageResponse{Message: "user added to " + role.String() + " group"})
}

// RemoveRoleMember handles DELETE /groups/{role}/users/{id} - withdraws the
// role from a user.
func (s *Server) RemoveRoleMember(ctx echo.Context) error {
	role, ok, err := s.authorizeRoleManagement(ctx)
	if !ok {
		return err
	}

	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid user id")
	}

	cmd, err := commands.NewRemoveRoleMemberCommand(role, userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveRoleMember.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "user removed from " + role.String() + " group"})
}

// GetCart handles GET /cart/menu-items - lists the principal's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	query, err := queries.NewGetCartQuery(principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	customerCart, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := cartResponse{
		Lines: make([]cartLineResponse, len(customerCart.Lines)),
		Total: customerCart.Total.String(),
	}
	for i, line := range customerCart.Lines {
		response.Lines[i] = cartLineResponse{
			MenuItemID: line.MenuItemID.String(),
			Title:      line.Title,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.String(),
			Price:      line.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddCartItem handles POST /cart/menu-items - adds a menu item to the
// principal's cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	var request addCartItemRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(request.MenuItemID)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewAddCartItemCommand(principal.UserID, menuItemID, request.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, messageResponse{Message: "item added to cart"})
}

// RemoveFromCart handles DELETE /cart/menu-items - removes one line when
// menu_item_id is given, otherwise clears the whole cart.
func (s *Server) RemoveFromCart(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	menuItemParam := ctx.QueryParam("menu_item_id")
	if menuItemParam == "" {
		cmd, err := commands.NewClearCartCommand(principal.UserID)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd); err != nil {
			return respondError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, messageResponse{Message: "cart cleared"})
	}

	menuItemID, err := kernel.UUIDFromString(menuItemParam)
	if err != nil {
		return respondBadRequest(ctx, "invalid menu item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(principal.UserID, menuItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "item removed from cart"})
}

// GetOrders handles GET /orders - lists orders visible to the principal:
// managers and admins see all, delivery crew see assigned, everyone else
// their own.
func (s *Server) GetOrders(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	scope, err := s.ordersScopeFor(ctx.Request().Context(), principal)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersQuery(scope, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.handlers.GetOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]orderSummaryResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderSummary(o.ID, o.CustomerID, o.DeliveryCrewID, o.Total, o.Status.String(), o.Date)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Checkout handles POST /orders - converts the principal's cart into an
// order.
func (s *Server) Checkout(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCheckoutCommand(orderID, principal.UserID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.Checkout.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{
		Message: "order placed",
		OrderID: orderID.String(),
	})
}

// GetOrder handles GET /orders/{id} - retrieves one order with its items.
// Visible to managers, admins, the customer who placed it and the assigned
// delivery crew.
func (s *Server) GetOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	visible := principal.IsAdmin || o.CustomerID.IsEqual(principal.UserID) ||
		(o.DeliveryCrewID != nil && o.DeliveryCrewID.IsEqual(principal.UserID))
	if !visible {
		isManager, roleErr := s.hasRole(ctx.Request().Context(), principal, roles.Manager)
		if roleErr != nil {
			return respondError(ctx, roleErr)
		}
		if !isManager {
			return respondForbidden(ctx)
		}
	}

	response := orderDetailResponse{
		orderSummaryResponse: toOrderSummary(o.ID, o.CustomerID, o.DeliveryCrewID, o.Total, o.Status.String(), o.Date),
		Items:                make([]orderItemResponse, len(o.Items)),
	}
	for i, item := range o.Items {
		response.Items[i] = orderItemResponse{
			MenuItemID: item.MenuItemID.String(),
			Title:      item.Title,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.String(),
			Price:      item.Price.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignDeliveryCrew handles PUT /orders/{id} - assigns a delivery crew
// user to the order (manager or admin).
func (s *Server) AssignDeliveryCrew(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	allowed, err := s.hasRole(ctx.Request().Context(), principal, roles.Manager)
	if err != nil {
		return respondError(ctx, err)
	}
	if !allowed {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	var request assignCrewRequest
	if err := ctx.Bind(&request); err != nil {
		return respondBadRequest(ctx, "invalid request body")
	}

	crewID, err := kernel.UUIDFromString(request.DeliveryCrewID)
	if err != nil {
		return respondBadRequest(ctx, "invalid delivery crew id")
	}

	cmd, err := commands.NewAssignDeliveryCrewCommand(orderID, crewID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.AssignDeliveryCrew.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "delivery crew assigned"})
}

// ToggleOrderStatus handles PATCH /orders/{id} - flips the order between
// pending and out-for-delivery (manager, admin or delivery crew).
func (s *Server) ToggleOrderStatus(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	allowed, err := s.hasRole(ctx.Request().Context(), principal, roles.Manager)
	if err != nil {
		return respondError(ctx, err)
	}
	if !allowed {
		allowed, err = s.hasRole(ctx.Request().Context(), principal, roles.DeliveryCrew)
		if err != nil {
			return respondError(ctx, err)
		}
	}
	if !allowed {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewToggleOrderStatusCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	status, err := s.handlers.ToggleOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order status set to " + status.String()})
}

// DeleteOrder handles DELETE /orders/{id} - permanently removes the order
// and its items (manager or admin).
func (s *Server) DeleteOrder(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return respondUnauthenticated(ctx)
	}

	allowed, err := s.hasRole(ctx.Request().Context(), principal, roles.Manager)
	if err != nil {
		return respondError(ctx, err)
	}
	if !allowed {
		return respondForbidden(ctx)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondBadRequest(ctx, "invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, messageResponse{Message: "order deleted"})
}

// hasRole reports whether the principal is an admin or holds the role.
func (s *Server) hasRole(ctx context.Context, principal Principal, role roles.Role) (bool, error) {
	if principal.IsAdmin {
		return true, nil
	}

	query, err := queries.NewIsRoleMemberQuery(role, principal.UserID)
	if err != nil {
		return false, err
	}

	return s.handlers.IsRoleMember.Handle(ctx, query)
}

// ordersScopeFor decides the order listing visibility for the principal.
func (s *Server) ordersScopeFor(ctx context.Context, principal Principal) (queries.OrdersScope, error) {
	isManager, err := s.hasRole(ctx, principal, roles.Manager)
	if err != nil {
		return queries.ScopeUnknown, err
	}
	if isManager {
		return queries.ScopeAll, nil
	}

	isCrew, err := s.hasRole(ctx, principal, roles.DeliveryCrew)
	if err != nil {
		return queries.ScopeUnknown, err
	}
	if isCrew {
		return queries.ScopeAssigned, nil
	}

	return queries.ScopeOwn, nil
}

// authorizeRoleManagement parses the role path parameter and checks the
// principal may manage that group: the manager group is admin only, the
// delivery-crew group is open to managers as well. When it returns ok=false
// the response has already been written and the handler must return err
// as-is.
func (s *Server) authorizeRoleManagement(ctx echo.Context) (roles.Role, bool, error) {
	principal, found := principalFrom(ctx)
	if !found {
		return 0, false, respondUnauthenticated(ctx)
	}

	role, err := roles.ParseRole(ctx.Param("role"))
	if err != nil {
		return 0, false, ctx.JSON(http.StatusNotFound, messageResponse{Message: "unknown group"})
	}

	allowed := principal.IsAdmin
	if !allowed && role == roles.DeliveryCrew {
		allowed, err = s.hasRole(ctx.Request().Context(), principal, roles.Manager)
		if err != nil {
			return 0, false, respondError(ctx, err)
		}
	}
	if !allowed {
		return 0, false, respondForbidden(ctx)
	}

	return role, true, nil
}

func toOrderSummary(
	id, customerID kernel.UUID, crewID *kernel.UUID, total kernel.Money, status string, date time.Time,
) orderSummaryResponse {
	var crew *string
	if crewID != nil {
		s := crewID.String()
		crew = &s
	}

	return orderSummaryResponse{
		ID:             id.String(),
		CustomerID:     customerID.String(),
		DeliveryCrewID: crew,
		Total:          total.String(),
		Status:         status,
		Date:           date,
	}
}

// respondError maps domain and application errors onto HTTP statuses.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, messageResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		return ctx.JSON(http.StatusConflict, messageResponse{Message: err.Error()})
	case errors.Is(err, services.ErrCartIsEmpty):
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, messageResponse{Message: err.Error()})
	default:
		return ctx.JSON(http.StatusInternalServerError, messageResponse{Message: "internal server error"})
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, messageResponse{Message: message})
}

func respondForbidden(ctx echo.Context) error {
	return ctx.JSON(http.StatusForbidden, messageResponse{Message: "forbidden"})
}

func respondUnauthenticated(ctx echo.Context) error {
	return ctx.JSON(http.StatusUnauthorized, messageResponse{Message: "unauthenticated"})
}
