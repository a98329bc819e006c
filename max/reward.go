package max

import "fmt"

// DefaultRewardLabel is used when the server parameters name no currency.
const DefaultRewardLabel = ""

// DefaultRewardAmount is used when the server parameters name no amount.
const DefaultRewardAmount = 0

// Reward is what a user receives for watching a rewarded ad.
type Reward struct {
	Label  string
	Amount int
}

func (r Reward) String() string {
	return fmt.Sprintf("MaxReward{amount=%d, label=%s}", r.Amount, r.Label)
}

// RewardFromServerParameters reads the reward configured for the ad unit.
func RewardFromServerParameters(params Bundle) Reward {
	return Reward{
		Label:  params.String("currency", DefaultRewardLabel),
		Amount: params.Int("amount", DefaultRewardAmount),
	}
}
