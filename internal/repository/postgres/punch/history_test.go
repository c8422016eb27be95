package punch_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ponto/backend/internal/repository/postgres/punch"
	"ponto/backend/internal/service/timeclock"
)

func at(day string, hour, minute int) time.Time {
	d, _ := time.ParseInLocation("2006-01-02", day, timeclock.Location)
	return d.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

// TestBuildHistory_DiaCompleto verifica a renderização de um dia fechado de
// batidas: horários locais em HH:MM, total diário e total geral.
func TestBuildHistory_DiaCompleto(t *testing.T) {
	records := []timeclock.Punch{
		{ID: 1, UserID: 7, Type: timeclock.Entry, Time: at("2025-03-10", 9, 0)},
		{ID: 2, UserID: 7, Type: timeclock.LunchStart, Time: at("2025-03-10", 12, 0)},
		{ID: 3, UserID: 7, Type: timeclock.LunchEnd, Time: at("2025-03-10", 13, 0)},
		{ID: 4, UserID: 7, Type: timeclock.Exit, Time: at("2025-03-10", 18, 0)},
	}

	response := punch.BuildHistory(timeclock.GroupByDay(records))

	assert.Len(t, response.Days, 1)
	assert.Equal(t, "08:00", response.Days[0].DailyTotal)
	assert.Equal(t, "08:00", response.GrandTotal)

	day := response.Days[0]
	assert.Equal(t, "2025-03-10", day.Date.Format("2006-01-02"))
	assert.Len(t, day.Records, 4)
	assert.Equal(t, "entrada", day.Records[0].Type)
	assert.Equal(t, "09:00", day.Records[0].Time)
	assert.Equal(t, "saida", day.Records[3].Type)
	assert.Equal(t, "18:00", day.Records[3].Time)
}

// TestBuildHistory_VariosDias soma os totais diários no total geral e mantém
// os dias em ordem crescente.
func TestBuildHistory_VariosDias(t *testing.T) {
	records := []timeclock.Punch{
		{ID: 5, UserID: 7, Type: timeclock.Entry, Time: at("2025-03-11", 9, 0)},
		{ID: 6, UserID: 7, Type: timeclock.Exit, Time: at("2025-03-11", 16, 30)},
		{ID: 1, UserID: 7, Type: timeclock.Entry, Time: at("2025-03-10", 9, 0)},
		{ID: 4, UserID: 7, Type: timeclock.Exit, Time: at("2025-03-10", 17, 0)},
	}

	response := punch.BuildHistory(timeclock.GroupByDay(records))

	assert.Len(t, response.Days, 2)
	assert.Equal(t, "2025-03-10", response.Days[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-03-11", response.Days[1].Date.Format("2006-01-02"))
	assert.Equal(t, "08:00", response.Days[0].DailyTotal)
	assert.Equal(t, "07:30", response.Days[1].DailyTotal)
	assert.Equal(t, "15:30", response.GrandTotal)
}

// TestBuildHistory_DiaIncompleto mostra um dia sem saída com total zerado.
func TestBuildHistory_DiaIncompleto(t *testing.T) {
	records := []timeclock.Punch{
		{ID: 1, UserID: 7, Type: timeclock.Entry, Time: at("2025-03-10", 9, 0)},
	}

	response := punch.BuildHistory(timeclock.GroupByDay(records))

	assert.Len(t, response.Days, 1)
	assert.Equal(t, "00:00", response.Days[0].DailyTotal)
	assert.Equal(t, "00:00", response.GrandTotal)
}

// TestBuildHistory_Vazio retorna resposta com zero dias e total geral zerado.
func TestBuildHistory_Vazio(t *testing.T) {
	response := punch.BuildHistory(nil)

	assert.Empty(t, response.Days)
	assert.Equal(t, "00:00", response.GrandTotal)
}
