// Package seed bootstraps the lottery-token table overlay and the
// expected-drawing-count map from operator-supplied CSV files, adapted
// from the teacher's internal/utils/csv_importer_enhanced.go (same
// encoding/csv + header-column-lookup shape, narrowed to this domain's
// two bootstrap files instead of user/topup/prize-structure imports).
package seed

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bridgetunes/lottery-settlement/internal/models"
)

// LoadLotteryTokens reads a CSV with header
// token,house,time,lottery,maluca and returns the overlay rows for
// resolver.Resolver.Load. A missing file is not an error — the
// canonical compiled-in table is the default and this overlay is
// optional.
func LoadLotteryTokens(path string) ([]models.LotteryIdToken, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed: open lottery token csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("seed: read lottery token csv header: %w", err)
	}

	tokenIdx := findColumnIndex(header, "token")
	houseIdx := findColumnIndex(header, "house")
	timeIdx := findColumnIndex(header, "time")
	lotteryIdx := findColumnIndex(header, "lottery")
	malucaIdx := findColumnIndex(header, "maluca")
	if tokenIdx == -1 || houseIdx == -1 || timeIdx == -1 || lotteryIdx == -1 {
		return nil, fmt.Errorf("seed: lottery token csv missing required column(s)")
	}

	var out []models.LotteryIdToken
	row := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("seed: lottery token csv row %d: %w", row, err)
		}
		maluca := false
		if malucaIdx != -1 && malucaIdx < len(rec) {
			maluca = parseBool(rec[malucaIdx])
		}
		out = append(out, models.LotteryIdToken{
			Token:   strings.TrimSpace(rec[tokenIdx]),
			House:   strings.TrimSpace(rec[houseIdx]),
			Time:    strings.TrimSpace(rec[timeIdx]),
			Lottery: strings.TrimSpace(rec[lotteryIdx]),
			Maluca:  maluca,
		})
	}
	return out, nil
}

// LoadExpectedDrawingCounts reads a CSV with header house,count into the
// map the scheduler's skip-planner uses to decide a house is done for
// the day.
func LoadExpectedDrawingCounts(path string) (map[string]int, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("seed: open expected-count csv: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("seed: read expected-count csv header: %w", err)
	}

	houseIdx := findColumnIndex(header, "house")
	countIdx := findColumnIndex(header, "count")
	if houseIdx == -1 || countIdx == -1 {
		return nil, fmt.Errorf("seed: expected-count csv missing required column(s)")
	}

	out := map[string]int{}
	row := 1
	for {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		row++
		if err != nil {
			return nil, fmt.Errorf("seed: expected-count csv row %d: %w", row, err)
		}
		count, err := strconv.Atoi(strings.TrimSpace(rec[countIdx]))
		if err != nil {
			return nil, fmt.Errorf("seed: expected-count csv row %d: invalid count %q: %w", row, rec[countIdx], err)
		}
		out[strings.TrimSpace(rec[houseIdx])] = count
	}
	return out, nil
}

func findColumnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "y"
}
