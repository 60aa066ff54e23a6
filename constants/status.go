package constants

// User roles
const (
	RoleSuperAdmin = 0
	RoleOwner      = 1
	RoleManager    = 2
	RoleStaff      = 3
)

// User / employee status
const (
	StatusInactive = 0
	StatusActive   = 1
)

// Stock movement types
const (
	StockMovementIn     = 0
	StockMovementOut    = 1
	StockMovementAdjust = 2
)

// Supplier payment methods
const (
	PaymentMethodCash     = 0
	PaymentMethodTransfer = 1
	PaymentMethodCheck    = 2
)
