package converter

import (
	dto "slot_backend/internal/api/dto/reel"
	"slot_backend/internal/model"
	"slot_backend/internal/payout"
)

func ToReelSpin(req dto.ReelSpinRequest) model.ReelSpin {
	return model.ReelSpin{
		Bet: req.Bet,
	}
}

func ToReelSpinResponse(resp model.SpinResult) dto.ReelSpinResponse {
	return dto.ReelSpinResponse{
		Combination: toSymbols(resp.Combination),
		Prize:       resp.Prize,
		Wilds:       resp.Wilds,
		Balance:     resp.Balance,
	}
}

func ToSimRequest(req dto.SimulateRequest) model.SimRequest {
	return model.SimRequest{
		Spins: req.Spins,
		Bet:   req.Bet,
	}
}

func ToSimulateResponse(resp model.SimReport) dto.SimulateResponse {
	return dto.SimulateResponse{
		Spins:       resp.Spins,
		TotalBet:    resp.TotalBet,
		TotalPayout: resp.TotalPayout,
		RTP:         resp.RTP,
		HitCount:    resp.HitCount,
		MaxPrize:    resp.MaxPrize,
		BestCombo:   toSymbols(resp.BestCombo),
	}
}

func ToDataResponse(data model.Data) dto.DataResponse {
	return dto.DataResponse{
		Balance:    data.Balance,
		TotalSpins: data.TotalSpins,
		TotalBet:   data.TotalBet,
		TotalWon:   data.TotalWon,
	}
}

func ToPaytableResponse(table map[payout.Symbol]int) dto.PaytableResponse {
	paytable := make(map[string]int, len(table))
	for sym, prize := range table {
		paytable[string(sym)] = prize
	}
	return dto.PaytableResponse{Paytable: paytable}
}

func toSymbols(combo payout.Combination) [3]string {
	var symbols [3]string
	for i, sym := range combo {
		symbols[i] = string(sym)
	}
	return symbols
}
