package utils

import (
	"clinic-booking-service/internal/pkg/dto/requests"
	"strings"
)

func cleanWhiteSpaceFromEachStringOfAnArray(input []string) []string {
	sanitizedArray := make([]string, len(input))
	for i, v := range input {
		sanitizedArray[i] = strings.TrimSpace(v)
	}
	return sanitizedArray
}

func SanitizeCreateBookingRequest(input *requests.CreateBooking) {
	input.Treatment = strings.TrimSpace(input.Treatment)
	input.Date = strings.TrimSpace(input.Date)
	input.Slot = strings.TrimSpace(input.Slot)
	input.Patient = strings.TrimSpace(input.Patient)
	input.PatientName = strings.TrimSpace(input.PatientName)
	input.Phone = strings.TrimSpace(input.Phone)
}

func SanitizeConfirmPaymentRequest(input *requests.ConfirmPayment) {
	input.TransactionID = strings.TrimSpace(input.TransactionID)
}

func SanitizeUpsertTreatmentRequest(input *requests.UpsertTreatment) {
	input.Name = strings.TrimSpace(input.Name)
	input.Slots = cleanWhiteSpaceFromEachStringOfAnArray(input.Slots)
}

func SanitizeUpsertUserRequest(input *requests.UpsertUser) {
	input.Email = strings.TrimSpace(input.Email)
	input.Name = strings.TrimSpace(input.Name)
}

func SanitizeCreateDoctorRequest(input *requests.CreateDoctor) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Specialty = strings.TrimSpace(input.Specialty)
	input.Img = strings.TrimSpace(input.Img)
}
