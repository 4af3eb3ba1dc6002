package scheduling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/campus-facility-booking/internal/domain"
)

func TestFindConflicts(t *testing.T) {
	existing := []*domain.Booking{
		booking("b1", "F1", at(9, 0), at(11, 0), domain.StatusConfirmed),
		booking("b2", "F1", at(13, 0), at(14, 0), domain.StatusCancelled),
		booking("b3", "F2", at(9, 0), at(12, 0), domain.StatusConfirmed),
		booking("b4", "F1", at(11, 30), at(12, 30), domain.StatusPending),
	}

	t.Run("overlap reports intersection window", func(t *testing.T) {
		conflicts := FindConflicts(existing, "F1", domain.NewInterval(at(10, 0), at(12, 0)), "")

		require.Len(t, conflicts, 2)
		assert.Equal(t, "b1", conflicts[0].Booking.ID)
		assert.Equal(t, domain.NewInterval(at(10, 0), at(11, 0)), conflicts[0].Overlap)
		assert.Equal(t, "F1", conflicts[0].FacilityID)

		assert.Equal(t, "b4", conflicts[1].Booking.ID, "pending bookings block")
		assert.Equal(t, domain.NewInterval(at(11, 30), at(12, 0)), conflicts[1].Overlap)
	})

	t.Run("back-to-back bookings do not conflict", func(t *testing.T) {
		assert.Empty(t, FindConflicts(existing, "F1", domain.NewInterval(at(11, 0), at(11, 30)), ""))
		assert.Empty(t, FindConflicts(existing, "F1", domain.NewInterval(at(8, 0), at(9, 0)), ""))
	})

	t.Run("cancelled bookings are ignored", func(t *testing.T) {
		assert.Empty(t, FindConflicts(existing, "F1", domain.NewInterval(at(13, 0), at(14, 0)), ""))
	})

	t.Run("other facilities are ignored", func(t *testing.T) {
		conflicts := FindConflicts(existing, "F2", domain.NewInterval(at(11, 0), at(13, 0)), "")
		require.Len(t, conflicts, 1)
		assert.Equal(t, "b3", conflicts[0].Booking.ID)
	})

	t.Run("excluded booking does not conflict with itself", func(t *testing.T) {
		conflicts := FindConflicts(existing, "F1", domain.NewInterval(at(9, 30), at(10, 30)), "b1")
		assert.Empty(t, conflicts)
	})

	t.Run("request enclosing a booking", func(t *testing.T) {
		conflicts := FindConflicts(existing, "F1", domain.NewInterval(at(8, 0), at(11, 15)), "")
		require.Len(t, conflicts, 1)
		assert.Equal(t, domain.NewInterval(at(9, 0), at(11, 0)), conflicts[0].Overlap)
	})

	t.Run("detector has no side effects", func(t *testing.T) {
		before := existing[0].Clone()
		FindConflicts(existing, "F1", domain.NewInterval(at(10, 0), at(12, 0)), "")
		assert.Equal(t, before, existing[0])
	})
}

func TestHasConflicts(t *testing.T) {
	existing := []*domain.Booking{booking("b1", "F1", at(9, 0), at(10, 0), domain.StatusConfirmed)}

	assert.True(t, HasConflicts(existing, "F1", domain.NewInterval(at(9, 59), at(10, 30)), ""))
	assert.False(t, HasConflicts(existing, "F1", domain.NewInterval(at(10, 0), at(10, 30)), ""))
	assert.False(t, HasConflicts(nil, "F1", domain.NewInterval(at(9, 0), at(10, 0)), ""))
}
