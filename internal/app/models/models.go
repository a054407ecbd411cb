package models

// Sex defines the biological sex recorded on intake
type Sex string

const (
	SexMale   Sex = "M"
	SexFemale Sex = "F"
)

// ParticipantStatus defines the call-center triage status
type ParticipantStatus string

const (
	ParticipantAwaiting  ParticipantStatus = "awaiting"
	ParticipantConfirmed ParticipantStatus = "yes"
	ParticipantDeclined  ParticipantStatus = "no"
)

// Decision defines the eligibility decision for a beneficiary
type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionPending  Decision = "pending"
	DecisionRefused  Decision = "refused"
)

// DeviceSide defines which ear(s) a hearing aid is fitted for
type DeviceSide string

const (
	DeviceSideUnilateral DeviceSide = "unilateral"
	DeviceSideBilateral  DeviceSide = "bilateral"
	DeviceSideUnknown    DeviceSide = "unknown"
)

// CampaignStatus is derived from the campaign date window, never stored
type CampaignStatus string

const (
	CampaignUpcoming CampaignStatus = "upcoming"
	CampaignOngoing  CampaignStatus = "ongoing"
	CampaignEnded    CampaignStatus = "ended"
)

// AdminRoleName is the distinguished immutable role. It cannot be renamed,
// deactivated or deleted regardless of the request payload.
const AdminRoleName = "admin_si"
