package constvars

const (
	RedisKeyTreatmentCatalog  = "treatments:catalog"
	RedisKeyPaymentLockFormat = "lock:payment:%s"
)
