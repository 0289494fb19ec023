package exchange

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitAssetQuote(t *testing.T) {
	tt := []struct {
		pair  string
		asset string
		quote string
	}{
		{"BTCUSDT", "BTC", "USDT"},
		{"ethbtc", "ETH", "BTC"},
		{"BNBFDUSD", "BNB", "FDUSD"},
		{"SOLBUSD", "SOL", "BUSD"},
		{"USDT", "", ""},
		{"XYZ", "", ""},
	}

	for _, tc := range tt {
		t.Run(tc.pair, func(t *testing.T) {
			asset, quote := SplitAssetQuote(tc.pair)
			require.Equal(t, tc.asset, asset)
			require.Equal(t, tc.quote, quote)
		})
	}
}

func TestDefaultAssetInfo(t *testing.T) {
	info := defaultAssetInfo("BTCUSDT")
	require.Equal(t, "BTC", info.BaseAsset)
	require.Equal(t, "USDT", info.QuoteAsset)
	require.Equal(t, 8, info.QuotePrecision)
}
