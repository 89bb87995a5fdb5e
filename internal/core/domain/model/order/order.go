package order

import (
	"errors"
	"time"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrOrderHasNoItems is returned when an order is constructed without any
	// items. Orders only come into existence from a non-empty cart.
	ErrOrderHasNoItems = errors.New("order must contain at least one item")
)

// Order is the aggregate root of the ordering workflow. It is created
// atomically from a non-empty cart at checkout and is immutable afterwards
// except for two narrow transitions: toggling the delivery status and
// assigning a delivery crew member.
//
// Invariants:
//   - valid unique identifier and customer reference
//   - at least one item
//   - total equals the exact decimal sum of item line prices at creation
//     time; it is computed once by the constructor and never recomputed
//   - deleting an order cascades to its items (enforced by persistence)
type Order struct {
	id             kernel.UUID
	customerID     kernel.UUID
	deliveryCrewID *kernel.UUID
	total          kernel.Money
	status         Status
	date           time.Time
	items          []*Item

	isConstructed bool
}

// NewOrder creates a pending Order from materialized items. The total is the
// exact sum of the item line prices; callers do not pass it in, which keeps
// the total/items invariant in one place.
//
// Example:
//
//	item, _ := order.NewItem(menuItemID, 2, unitPrice)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, today, []*order.Item{item})
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(id kernel.UUID, customerID kernel.UUID, date time.Time, items []*Item) (*Order, error) {
	o := &Order{
		status:        Pending,
		date:          date,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := kernel.ZeroMoney()
	for _, item := range o.items {
		total = total.Add(item.Price())
	}
	o.total = total

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its stored
// total, status and crew assignment. The stored total wins over recomputation
// so historical orders render exactly as they were placed.
func RestoreOrder(
	id kernel.UUID,
	customerID kernel.UUID,
	total kernel.Money,
	status Status,
	deliveryCrewID *kernel.UUID,
	date time.Time,
	items []*Item,
) (*Order, error) {
	o, err := NewOrder(id, customerID, date, items)
	if err != nil {
		return nil, err
	}

	if err = total.Validate(); err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}
	if deliveryCrewID != nil {
		if err = deliveryCrewID.Validate(); err != nil {
			return nil, err
		}
	}

	o.total = total
	o.status = status
	o.deliveryCrewID = deliveryCrewID
	return o, nil
}

// Validate ensures the Order was created through NewOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// DeliveryCrew returns the assigned crew member's ID, or nil if unassigned.
func (o *Order) DeliveryCrew() *kernel.UUID {
	return o.deliveryCrewID
}

// Total returns the order total fixed at creation time.
func (o *Order) Total() kernel.Money {
	return o.total
}

// Status returns the order's current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// Date returns the date the order was placed.
func (o *Order) Date() time.Time {
	return o.date
}

// Items returns the order's materialized line items.
func (o *Order) Items() []*Item {
	return o.items
}

// ToggleStatus flips the delivery status between Pending and OutForDelivery.
// Two consecutive toggles restore the original status.
func (o *Order) ToggleStatus() error {
	newStatus, err := o.status.Toggle()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// AssignCrew sets the delivery crew member for the order. Reassignment is
// allowed; managers fix mistakes by assigning again.
func (o *Order) AssignCrew(crewID kernel.UUID) error {
	if err := crewID.Validate(); err != nil {
		return err
	}

	o.deliveryCrewID = &crewID
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer reference", err)
	}
	o.customerID = customerID
	return nil
}

func (o *Order) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = items
	return nil
}
