package background

import (
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/uber-go/tally"

	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/utils"
)

func setupNotifier() (*Notifier, tally.TestScope) {
	viper.Set("i18n.dir", "../i18n")
	utils.InitI18NBundle()

	scope := tally.NewTestScope("", nil)
	return NewNotifier(scope), scope
}

func TestNotifyNearbyNGOs(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	n, scope := setupNotifier()
	msg := n.NotifyNearbyNGOs(schema.Donation{
		FoodType: "Rice",
		Quantity: "10 servings",
		Location: "Mall Road",
	})

	assert.Equal(t, "New donation nearby: 10 servings of Rice at Mall Road", msg)
	assert.Equal(t, int64(1), counterValue(scope, "notifications", map[string]string{"kind": "donation"}))
	if assert.NotNil(t, hook.LastEntry()) {
		assert.Equal(t, msg, hook.LastEntry().Message)
		assert.Equal(t, "ngo", hook.LastEntry().Data["audience"])
	}
}

func TestNotifyDonor(t *testing.T) {
	n, scope := setupNotifier()
	msg := n.NotifyDonor(schema.Listing{ID: 2, FoodType: "Fresh Bread & Pastries", Donor: "Sunrise Bakery"})

	assert.Equal(t, `"Fresh Bread & Pastries" has been requested for pickup`, msg)
	assert.Equal(t, int64(1), counterValue(scope, "notifications", map[string]string{"kind": "pickup_request"}))
	assert.Equal(t, int64(0), counterValue(scope, "notifications", map[string]string{"kind": "donation"}))
}
