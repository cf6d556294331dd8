package errors

// Error codes returned in ErrorResponse.Error.
// Format: CATEGORY_SPECIFIC_DETAIL. The frontend maps messages from these.

const (
	// ==================== Session (SESSION_) ====================
	SessionRequired = "SESSION_REQUIRED"  // missing X-Session-ID
	SessionNotFound = "SESSION_NOT_FOUND" // unknown or swept session

	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID    = "VALIDATION_INVALID_ID"
	ValidationRequired     = "VALIDATION_REQUIRED"

	// ==================== Catalog (CATALOG_) ====================
	CatalogWineNotFound    = "CATALOG_WINE_NOT_FOUND"
	CatalogInvalidCategory = "CATALOG_INVALID_CATEGORY"
	CatalogWrongCategory   = "CATALOG_WRONG_CATEGORY" // known key toggled under another group
	CatalogEmptyIngredient = "CATALOG_EMPTY_INGREDIENT"

	// ==================== Configurator (CONFIG_) ====================
	ConfigFlavorRequired = "CONFIG_FLAVOR_REQUIRED"

	// ==================== Cart (CART_) ====================
	CartItemNotFound     = "CART_ITEM_NOT_FOUND"
	CartEmpty            = "CART_EMPTY"
	CartInvalidItem      = "CART_INVALID_ITEM"
	CartQuantityTooLarge = "CART_QUANTITY_TOO_LARGE"
	CartTotalTooLarge    = "CART_TOTAL_TOO_LARGE"

	// ==================== Favorites (FAVORITE_) ====================
	FavoriteInvalid = "FAVORITE_INVALID"

	// ==================== Checkout (CHECKOUT_) ====================
	CheckoutInvalidPayload       = "CHECKOUT_INVALID_PAYLOAD"
	CheckoutHandoffNotFound      = "CHECKOUT_HANDOFF_NOT_FOUND" // expired or already used
	CheckoutDegraded             = "CHECKOUT_DEGRADED"
	CheckoutInvalidCustomer      = "CHECKOUT_INVALID_CUSTOMER"
	CheckoutConfirmationNotFound = "CHECKOUT_CONFIRMATION_NOT_FOUND"
	DonationInvalid              = "DONATION_INVALID"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError  = "INTERNAL_SERVER_ERROR"
	InternalStorageError = "INTERNAL_STORAGE_ERROR" // redis / snapshot store
	InternalExternalAPI  = "INTERNAL_EXTERNAL_API"
	InternalConfigError  = "INTERNAL_CONFIG_ERROR"
)
