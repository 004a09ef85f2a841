package constvars

const (
	MongoCollectionTreatments = "services"
	MongoCollectionBookings   = "booking"
	MongoCollectionPayments   = "payments"
	MongoCollectionUsers      = "users"
	MongoCollectionDoctors    = "doctor"
)

const (
	MongoIndexBookingPatientPerDay = "uniq_treatment_date_patient"
	MongoIndexBookingSlotPerDay    = "uniq_treatment_date_slot"
	MongoIndexPaymentTransaction   = "uniq_transaction_id"
	MongoIndexPaymentBooking       = "uniq_payment_booking"
	MongoIndexBookingDate          = "idx_date"
	MongoIndexBookingPatient       = "idx_patient"
	MongoIndexUserEmail            = "uniq_email"
	MongoIndexDoctorEmail          = "uniq_doctor_email"
)
