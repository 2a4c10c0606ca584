package settlement

import (
	"testing"

	"github.com/bridgetunes/lottery-settlement/internal/models"
	"github.com/stretchr/testify/assert"
)

func drawing(numbers ...string) models.Drawing {
	d := models.Drawing{Date: "2026-07-30", Time: "14:00", House: "RIO", Lottery: "RIO"}
	for _, n := range numbers {
		d.Prizes = append(d.Prizes, models.Prize{Number: n})
	}
	return d
}

func TestApplyMalucaLotece(t *testing.T) {
	d := drawing("1234", "5678", "9012", "3456", "7890", "1111", "2222")

	out := ApplyMaluca("LOTECE", d)

	assert.Len(t, out.Prizes, 7)
	assert.Equal(t, "4321", out.Prizes[0].Number)
	assert.Equal(t, "2222", out.Prizes[6].Number) // reverse of 2222
}

func TestApplyMalucaOtherHousesReversesFirstFiveOnly(t *testing.T) {
	d := drawing("1234", "5678", "9012", "3456", "7890", "1111", "2222")

	out := ApplyMaluca("RIO", d)

	assert.Len(t, out.Prizes, 5)
	assert.Equal(t, "4321", out.Prizes[0].Number)
	assert.Equal(t, "8765", out.Prizes[1].Number)
	assert.Equal(t, "0987", out.Prizes[4].Number)
}

func TestApplyMalucaPreservesKeyFields(t *testing.T) {
	d := drawing("1234")
	out := ApplyMaluca("RIO", d)
	assert.Equal(t, d.Date, out.Date)
	assert.Equal(t, d.Time, out.Time)
	assert.Equal(t, d.House, out.House)
	assert.Equal(t, d.Lottery, out.Lottery)
}

func TestApplyMalucaDoesNotMutateInput(t *testing.T) {
	d := drawing("1234", "5678")
	before := d.Prizes[0].Number
	_ = ApplyMaluca("RIO", d)
	assert.Equal(t, before, d.Prizes[0].Number)
}
