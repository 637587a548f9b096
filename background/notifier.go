package background

import (
	"github.com/uber-go/tally"

	"github.com/foodsharenow/foodshare-api/schema"
	"github.com/foodsharenow/foodshare-api/utils"
)

// Notifier stands in for push delivery. Notifications are only logged.
type Notifier struct {
	metrics tally.Scope
}

func NewNotifier(scope tally.Scope) *Notifier {
	return &Notifier{metrics: scope}
}

// NotifyNearbyNGOs announces a new donation to recipients around its location
func (n *Notifier) NotifyNearbyNGOs(d schema.Donation) string {
	msg := utils.LocalizeMessage(utils.NewLocalizer("en"), "notification.new_donation", map[string]interface{}{
		"FoodType": d.FoodType,
		"Quantity": d.Quantity,
		"Location": d.Location,
	})

	n.metrics.Tagged(map[string]string{"kind": "donation"}).Counter("notifications").Inc(1)
	log.WithField("audience", "ngo").Info(msg)
	return msg
}

// NotifyDonor tells the donor of a listing that it has been requested
func (n *Notifier) NotifyDonor(l schema.Listing) string {
	msg := utils.LocalizeMessage(utils.NewLocalizer("en"), "notification.pickup_requested", map[string]interface{}{
		"FoodType": l.FoodType,
	})

	n.metrics.Tagged(map[string]string{"kind": "pickup_request"}).Counter("notifications").Inc(1)
	log.WithField("audience", "donor").WithField("donor", l.Donor).Info(msg)
	return msg
}
