package constvars

type NotificationKind string

const (
	NotificationKindBookingCreated   NotificationKind = "BookingCreated"
	NotificationKindPaymentConfirmed NotificationKind = "PaymentConfirmed"
)

const (
	NotificationStatusPublished = "published"
	NotificationStatusFailed    = "failed"
	NotificationStatusDelivered = "delivered"
	NotificationStatusDropped   = "dropped"
)

const (
	BookingOutcomeAccepted  = "accepted"
	BookingOutcomeDuplicate = "duplicate"
	BookingOutcomeSlotTaken = "slot_taken"
	BookingOutcomeFailed    = "failed"
	PaymentOutcomeConfirmed = "confirmed"
	PaymentOutcomeReplayed  = "replayed"
	PaymentOutcomeFailed    = "failed"
)

const (
	RejectReasonDuplicateBooking = "duplicate_booking"
	RejectReasonSlotTaken        = "slot_taken"
)
