package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/apperrors"
	"salonbook/models"
)

// Guarded deletes make a dangling link unreachable through the public API,
// so corrupt the map directly to prove the read path surfaces it instead of
// silently skipping.
func TestServicesForProfessional_DanglingLinkSurfaced(t *testing.T) {
	st := New()

	professional, err := st.CreateProfessional(models.Professional{Name: "A", Document: "111", Active: true})
	require.NoError(t, err)
	service, err := st.CreateService(models.Service{Name: "Cut", Duration: 30, Price: 10, Active: true})
	require.NoError(t, err)
	_, err = st.LinkProfessionalService(professional.ID, service.ID)
	require.NoError(t, err)

	st.mu.Lock()
	delete(st.services, service.ID)
	st.mu.Unlock()

	_, err = st.ServicesForProfessional(professional.ID)
	var ri *apperrors.ReferentialIntegrityError
	require.ErrorAs(t, err, &ri)
	assert.Contains(t, err.Error(), "deleted service")
}
