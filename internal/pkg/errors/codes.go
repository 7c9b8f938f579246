package errors

import "net/http"

var (
	ErrVenueNotFound = New(
		"VENUE_NOT_FOUND",
		"Venue not found",
		http.StatusNotFound,
	)

	ErrInvalidVenue = New(
		"INVALID_VENUE",
		"Invalid venue data",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrImportParse = New(
		"IMPORT_PARSE_ERROR",
		"Import payload must be a JSON array of venues",
		http.StatusBadRequest,
	)

	ErrImportInvalidItem = New(
		"IMPORT_INVALID_ITEM",
		"Import item is missing required fields (name, city, category)",
		http.StatusBadRequest,
	)

	ErrStorage = New(
		"STORAGE_ERROR",
		"Storage operation failed",
		http.StatusInternalServerError,
	)

	ErrLocationUnavailable = New(
		"LOCATION_UNAVAILABLE",
		"Current location could not be determined",
		http.StatusServiceUnavailable,
	)

	ErrLocationTimeout = New(
		"LOCATION_TIMEOUT",
		"Location request timed out",
		http.StatusGatewayTimeout,
	)

	ErrLocationNotKnown = New(
		"LOCATION_NOT_KNOWN",
		"No location has been acquired yet",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
