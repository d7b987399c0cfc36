package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/trezcool/shule/core/user"
	"github.com/trezcool/shule/storage/inmemstore"
)

func Test_client_Attendance(t *testing.T) {
	var gotPath, gotMonth string
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMonth = r.URL.Query().Get("month")
		respondJSON(w, http.StatusOK, okEnvelope([]AttendanceDay{
			{Date: "2026-08-03", Status: AttendancePresent},
			{Date: "2026-08-04", Status: AttendanceAbsent},
		}))
	}), inmemstore.New(), nil)
	writeSession(t, c.store, "tok", user.RoleStudent)

	days, err := c.Attendance(context.Background(), "2026-08")
	if err != nil {
		t.Fatalf("Attendance() failed: %v", err)
	}
	assert.Equal(t, "/v1/attendance", gotPath)
	assert.Equal(t, "2026-08", gotMonth)
	assert.Len(t, days, 2)
	assert.Equal(t, AttendanceAbsent, days[1].Status)
}

func Test_client_Attendance_invalidMonth(t *testing.T) {
	var hits int
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}), inmemstore.New(), nil)

	for _, month := range []string{"", "2026", "2026-13", "08-2026", "2026-8"} {
		if _, err := c.Attendance(context.Background(), month); err == nil {
			t.Errorf("Attendance(%q) expected an error", month)
		}
	}
	assert.Zero(t, hits, "invalid months must not hit the network")
}
