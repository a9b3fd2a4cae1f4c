package service

import (
	"math/rand"

	"dicey_decisions/internal/apperrors"
	"dicey_decisions/internal/models"
)

// validateTiebreaker 檢查決勝方式是否適用於目前的平手數量
// 不合法的組合直接回報錯誤，不會悄悄改用其他方式
func validateTiebreaker(method models.TiebreakerMethod, tiedCount int) error {
	switch method {
	case models.TiebreakerRandom, models.TiebreakerSpinner:
		return nil
	case models.TiebreakerCoin:
		if tiedCount != 2 {
			return apperrors.Validation("擲硬幣只適用於剛好兩個平手選項")
		}
		return nil
	case models.TiebreakerDice:
		if tiedCount > 6 {
			return apperrors.Validation("擲骰子最多適用於六個平手選項")
		}
		return nil
	default:
		return apperrors.Validation("不支援的決勝方式")
	}
}

// pickTiedWinner 在平手選項中均勻隨機選出一個贏家
// 骰子、硬幣和轉盤只是前端動畫上的差異，機率上每個選項都是 1/N
// 用套件層級的隨機來源，多個請求同時定案也安全
func pickTiedWinner(method models.TiebreakerMethod, tied []uint) (uint, error) {
	if err := validateTiebreaker(method, len(tied)); err != nil {
		return 0, err
	}
	return tied[rand.Intn(len(tied))], nil
}
