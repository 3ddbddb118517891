package create_reservation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/timisoara-dining/reservation-service/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	base := func() *Request {
		return &Request{
			Name:     "Ana Popescu",
			Phone:    "+40712345678",
			Date:     time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC),
			TimeSlot: domain.Slot1200,
		}
	}

	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(req *Request) {},
		},
		{
			name:   "name at minimum length",
			mutate: func(req *Request) { req.Name = "Ana" },
		},
		{
			name:    "name too short",
			mutate:  func(req *Request) { req.Name = "Ab" },
			wantErr: true,
		},
		{
			name:    "name of only whitespace",
			mutate:  func(req *Request) { req.Name = "   " },
			wantErr: true,
		},
		{
			name:    "whitespace does not count toward length",
			mutate:  func(req *Request) { req.Name = " Ab " },
			wantErr: true,
		},
		{
			name:    "name too long",
			mutate:  func(req *Request) { req.Name = strings.Repeat("a", domain.MaxNameLength+1) },
			wantErr: true,
		},
		{
			name:    "missing phone",
			mutate:  func(req *Request) { req.Phone = "" },
			wantErr: true,
		},
		{
			name:    "phone too long",
			mutate:  func(req *Request) { req.Phone = strings.Repeat("1", domain.MaxPhoneLength+1) },
			wantErr: true,
		},
		{
			name:    "missing date",
			mutate:  func(req *Request) { req.Date = time.Time{} },
			wantErr: true,
		},
		{
			name:    "unknown time slot",
			mutate:  func(req *Request) { req.TimeSlot = domain.TimeSlot("SLOT_23_00") },
			wantErr: true,
		},
		{
			name:    "empty time slot",
			mutate:  func(req *Request) { req.TimeSlot = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
