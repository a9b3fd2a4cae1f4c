package service

import (
	"testing"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
)

func TestValidateTiebreaker(t *testing.T) {
	tests := []struct {
		name      string
		method    models.TiebreakerMethod
		tiedCount int
		wantErr   bool
	}{
		{"random any size", models.TiebreakerRandom, 9, false},
		{"spinner any size", models.TiebreakerSpinner, 9, false},
		{"coin with 2", models.TiebreakerCoin, 2, false},
		{"coin with 3", models.TiebreakerCoin, 3, true},
		{"dice with 6", models.TiebreakerDice, 6, false},
		{"dice with 7", models.TiebreakerDice, 7, true},
		{"unknown method", models.TiebreakerMethod("owner"), 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateTiebreaker(tt.method, tt.tiedCount)
			if tt.wantErr {
				if apperrors.KindOf(err) != apperrors.KindValidation {
					t.Fatalf("validateTiebreaker = %v, want ValidationError", err)
				}
			} else if err != nil {
				t.Fatalf("validateTiebreaker: %v", err)
			}
		})
	}
}

func TestPickTiedWinnerRejectsInvalidCombination(t *testing.T) {
	_, err := pickTiedWinner(models.TiebreakerCoin, []uint{1, 2, 3})
	if apperrors.KindOf(err) != apperrors.KindValidation {
		t.Fatalf("pickTiedWinner = %v, want ValidationError", err)
	}
}

// 硬幣、骰子和轉盤都應該是均勻分布，這裡用硬幣抽一萬次驗證
func TestPickTiedWinnerCoinIsUniform(t *testing.T) {
	tied := []uint{10, 20}

	const draws = 10000
	wins := make(map[uint]int, 2)
	for i := 0; i < draws; i++ {
		winner, err := pickTiedWinner(models.TiebreakerCoin, tied)
		if err != nil {
			t.Fatalf("pickTiedWinner: %v", err)
		}
		wins[winner]++
	}

	if wins[10]+wins[20] != draws {
		t.Fatalf("winner outside tied set: %v", wins)
	}
	// 每面期望 5000 次，容忍 ±3%
	for _, optionID := range tied {
		if wins[optionID] < 4700 || wins[optionID] > 5300 {
			t.Fatalf("option %d won %d of %d draws, outside tolerance", optionID, wins[optionID], draws)
		}
	}
}

func TestPickTiedWinnerDiceCoversAllFaces(t *testing.T) {
	tied := []uint{1, 2, 3, 4, 5, 6}

	seen := make(map[uint]bool)
	for i := 0; i < 2000; i++ {
		winner, err := pickTiedWinner(models.TiebreakerDice, tied)
		if err != nil {
			t.Fatalf("pickTiedWinner: %v", err)
		}
		seen[winner] = true
	}
	if len(seen) != len(tied) {
		t.Fatalf("only %d of %d faces ever won", len(seen), len(tied))
	}
}
