package api

import (
	"github.com/foodsharenow/foodshare-api/background"
	"github.com/foodsharenow/foodshare-api/catalog"
	"github.com/foodsharenow/foodshare-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1011: "cannot parse request",

		1100: store.ErrListingNotFound.Error(),
		1101: "invalid listing id",
		1102: catalog.ErrUnknownCategory.Error(),
		1103: "the donor has no contact number",

		1200: "invalid donation",
		1201: "unknown food type",
		1202: background.ErrAnalysisNotFound.Error(),
		1203: "invalid analysis id",

		1300: "unknown pickup date",

		1400: store.ErrUnknownPeriod.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorCannotParseRequest = errorJSON(1011)

	errorUnknownListing   = errorJSON(1100)
	errorInvalidListingID = errorJSON(1101)
	errorUnknownCategory  = errorJSON(1102)
	errorNoDonorContact   = errorJSON(1103)

	errorInvalidDonation   = errorJSON(1200)
	errorUnknownFoodType   = errorJSON(1201)
	errorAnalysisNotFound  = errorJSON(1202)
	errorInvalidAnalysisID = errorJSON(1203)

	errorUnknownPickupDate = errorJSON(1300)

	errorUnknownPeriod = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
