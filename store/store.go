// Package store is the authoritative in-memory storage for all salonbook
// entities. Ids are process-assigned, monotonically increasing per entity
// type. Every operation runs to completion under the store mutex, so no
// partial write is ever observable; appointment creation re-validates
// conflicts inside the same critical section.
package store

import (
	"sync"

	"salonbook/models"
)

type Store struct {
	mu sync.RWMutex

	users                map[uint]models.User
	professionals        map[uint]models.Professional
	services             map[uint]models.Service
	professionalServices map[uint]models.ProfessionalService
	schedules            map[uint]models.WorkSchedule
	appointments         map[uint]models.Appointment
	transactions         map[uint]models.Transaction

	userSeq         uint
	professionalSeq uint
	serviceSeq      uint
	linkSeq         uint
	scheduleSeq     uint
	appointmentSeq  uint
	transactionSeq  uint
}

// New returns an empty store. Each test constructs its own instance; there
// is no package-level shared state.
func New() *Store {
	return &Store{
		users:                make(map[uint]models.User),
		professionals:        make(map[uint]models.Professional),
		services:             make(map[uint]models.Service),
		professionalServices: make(map[uint]models.ProfessionalService),
		schedules:            make(map[uint]models.WorkSchedule),
		appointments:         make(map[uint]models.Appointment),
		transactions:         make(map[uint]models.Transaction),
	}
}

func next(seq *uint) uint {
	*seq++
	return *seq
}
