package advisor

// Stats summarizes a wallet's betting record for Feedback.
type Stats struct {
	Address   string
	TotalBets uint64
	WinBets   uint64
	// TotalPnL is in whole tokens.
	TotalPnL float64
	// RecentResults are short labels of the latest ledger entries, newest first.
	RecentResults []string
}

// WinRate is the share of winning bets in percent.
func (s Stats) WinRate() float64 {
	if s.TotalBets == 0 {
		return 0
	}
	return float64(s.WinBets) / float64(s.TotalBets) * 100
}
