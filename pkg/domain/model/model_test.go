package model_test

import (
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/briareos/pkg/domain/model"
	"github.com/secmon-lab/briareos/pkg/domain/types"
)

func TestNewSessionID(t *testing.T) {
	id1 := model.NewSessionID()
	id2 := model.NewSessionID()

	gt.Value(t, string(id1)).NotEqual("")
	gt.Value(t, string(id2)).NotEqual("")
	gt.Value(t, id1).NotEqual(id2)
}

func TestDurationSetTotalDays(t *testing.T) {
	cases := []struct {
		name string
		set  model.DurationSet
		want int
	}{
		{"empty", model.DurationSet{}, 0},
		{"days only", model.DurationSet{model.UnitDays: 5}, 5},
		{"weeks", model.DurationSet{model.UnitWeeks: 2}, 14},
		{"three months", model.DurationSet{model.UnitMonths: 3}, 90},
		{"one year", model.DurationSet{model.UnitYears: 1}, 365},
		{"mixed", model.DurationSet{model.UnitMonths: 2, model.UnitDays: 3}, 63},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gt.Value(t, tc.set.TotalDays()).Equal(tc.want)
		})
	}
}

func TestSessionExportValidate(t *testing.T) {
	valid := func() *model.SessionExport {
		return &model.SessionExport{
			Session: model.SessionRecord{
				ID:           "session-1",
				Status:       types.SessionStatusActive,
				CreatedAt:    time.Now(),
				LastActivity: time.Now(),
			},
			Messages: []model.MessageEntry{
				{Role: types.RoleUser, Content: "bonjour", Timestamp: time.Now()},
			},
			RecentCategories: []types.CategoryID{types.CategoryGeneral},
			RecentAgents:     []types.AgentType{types.AgentGeneral},
		}
	}

	t.Run("valid blob passes", func(t *testing.T) {
		gt.NoError(t, valid().Validate())
	})

	t.Run("empty session ID", func(t *testing.T) {
		e := valid()
		e.Session.ID = ""
		gt.Error(t, e.Validate())
	})

	t.Run("invalid status", func(t *testing.T) {
		e := valid()
		e.Session.Status = types.SessionStatus("frozen")
		gt.Error(t, e.Validate())
	})

	t.Run("negative counters", func(t *testing.T) {
		e := valid()
		e.Session.MessageCount = -1
		gt.Error(t, e.Validate())
	})

	t.Run("invalid message role", func(t *testing.T) {
		e := valid()
		e.Messages[0].Role = types.MessageRole("system")
		gt.Error(t, e.Validate())
	})

	t.Run("invalid recent category", func(t *testing.T) {
		e := valid()
		e.RecentCategories = []types.CategoryID{"Bad_ID"}
		gt.Error(t, e.Validate())
	})

	t.Run("invalid recent agent", func(t *testing.T) {
		e := valid()
		e.RecentAgents = []types.AgentType{"nobody"}
		gt.Error(t, e.Validate())
	})
}

func TestFallbackResult(t *testing.T) {
	r := model.FallbackResult("s1")
	gt.Value(t, r.Category).Equal(types.CategoryGeneral)
	gt.Value(t, r.Agent).Equal(types.AgentGeneral)
	gt.Bool(t, r.Escalate).False()
	gt.Value(t, r.Priority).Equal(types.PriorityLow)
}
