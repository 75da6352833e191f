package yacht

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CharterService/internal/domain"
)

func TestPriceTiers_ValueScan(t *testing.T) {
	in := priceTiers{{CharterHours: 4, RetailCents: 250000}, {CharterHours: 8, RetailCents: 400000}}

	v, err := in.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `[{"charterHours":4,"retailCents":250000},{"charterHours":8,"retailCents":400000}]`, string(v.([]byte)))

	var out priceTiers
	require.NoError(t, out.Scan(v))
	assert.Equal(t, []domain.PriceTier(in), []domain.PriceTier(out))
}

func TestPriceTiers_ScanNullAndString(t *testing.T) {
	var out priceTiers
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)

	require.NoError(t, out.Scan(`[{"charterHours":6,"retailCents":1}]`))
	assert.Equal(t, 6, out[0].CharterHours)

	assert.Error(t, out.Scan(42))
	assert.Error(t, out.Scan([]byte(`{`)))
}
