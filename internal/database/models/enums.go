package models

// UserRole represents the role of a user account
type UserRole string

const (
	UserRoleUser       UserRole = "USER"
	UserRoleTechnician UserRole = "TECHNICIAN"
	UserRoleManager    UserRole = "MANAGER"
)

// EquipmentStatus represents the lifecycle status of an equipment record.
// SCRAPPED is terminal; there is no transition out of it.
type EquipmentStatus string

const (
	EquipmentStatusActive   EquipmentStatus = "ACTIVE"
	EquipmentStatusScrapped EquipmentStatus = "SCRAPPED"
)

// RequestType represents the kind of maintenance request. Fixed at creation.
type RequestType string

const (
	RequestTypeCorrective RequestType = "CORRECTIVE"
	RequestTypePreventive RequestType = "PREVENTIVE"
)

// RequestStatus represents the status of a maintenance request
type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "NEW"
	RequestStatusInProgress RequestStatus = "IN_PROGRESS"
	RequestStatusRepaired   RequestStatus = "REPAIRED"
	RequestStatusScrap      RequestStatus = "SCRAP"
)

// AllRequestStatuses lists every status in kanban column order
var AllRequestStatuses = []RequestStatus{
	RequestStatusNew,
	RequestStatusInProgress,
	RequestStatusRepaired,
	RequestStatusScrap,
}

// RequestPriority represents the priority of a maintenance request
type RequestPriority string

const (
	RequestPriorityLow    RequestPriority = "LOW"
	RequestPriorityMedium RequestPriority = "MEDIUM"
	RequestPriorityHigh   RequestPriority = "HIGH"
)

// IsValid checks if the UserRole is valid
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleTechnician, UserRoleManager:
		return true
	}
	return false
}

// IsValid checks if the EquipmentStatus is valid
func (s EquipmentStatus) IsValid() bool {
	switch s {
	case EquipmentStatusActive, EquipmentStatusScrapped:
		return true
	}
	return false
}

// IsValid checks if the RequestType is valid
func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeCorrective, RequestTypePreventive:
		return true
	}
	return false
}

// IsValid checks if the RequestStatus is valid
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestStatusNew, RequestStatusInProgress, RequestStatusRepaired, RequestStatusScrap:
		return true
	}
	return false
}

// IsValid checks if the RequestPriority is valid
func (p RequestPriority) IsValid() bool {
	switch p {
	case RequestPriorityLow, RequestPriorityMedium, RequestPriorityHigh:
		return true
	}
	return false
}
