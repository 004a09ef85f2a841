package controllers

import (
	"clinic-booking-service/internal/pkg/constvars"
	"net/http"
)

func Greeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, "text/plain; charset=utf-8")
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte(constvars.AppGreetingMessage))
}
