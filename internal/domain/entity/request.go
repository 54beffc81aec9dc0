package entity

import "slices"

// RequestType is the kind of request a customer (or business) posts.
type RequestType string

const (
	RequestTypeItem         RequestType = "item"
	RequestTypeService      RequestType = "service"
	RequestTypeRent         RequestType = "rent"
	RequestTypeDelivery     RequestType = "delivery"
	RequestTypeRide         RequestType = "ride"
	RequestTypePrice        RequestType = "price"
	RequestTypeTours        RequestType = "tours"
	RequestTypeEvents       RequestType = "events"
	RequestTypeConstruction RequestType = "construction"
	RequestTypeEducation    RequestType = "education"
	RequestTypeHiring       RequestType = "hiring"
)

// commonRequestTypes are answered by any product seller or delivery service.
var commonRequestTypes = []RequestType{
	RequestTypeItem,
	RequestTypeService,
	RequestTypeTours,
	RequestTypeEvents,
	RequestTypeConstruction,
	RequestTypeEducation,
	RequestTypeHiring,
}

// String returns the string representation of the RequestType.
func (t RequestType) String() string {
	return string(t)
}

// IsCommon reports whether t belongs to the common request set.
func (t RequestType) IsCommon() bool {
	return slices.Contains(commonRequestTypes, t)
}

// RequestDescriptor is the inbound value driving one targeting computation.
type RequestDescriptor struct {
	RequestID     string      `json:"request_id" validate:"required"`
	RequestType   RequestType `json:"request_type" validate:"required"`
	CategoryID    string      `json:"category_id"`
	SubcategoryID string      `json:"subcategory_id,omitempty"`
	CountryCode   string      `json:"country_code" validate:"omitempty,len=2,alpha"`
}
