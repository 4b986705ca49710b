package cost

import (
	"fmt"

	"github.com/spf13/viper"
)

// Profile is an estimation parameter set loaded from a YAML file
type Profile struct {
	Category         string  `mapstructure:"category"`
	EAF              float64 `mapstructure:"eaf"`
	AvgSalary        float64 `mapstructure:"avg_salary"`
	TeamSize         int     `mapstructure:"team_size"`
	AdditionalHWCost float64 `mapstructure:"additional_hw_cost"`
	MachineCost      float64 `mapstructure:"machine_cost"`
	MiscCost         float64 `mapstructure:"misc_cost"`
	PaidSWCost       float64 `mapstructure:"paid_sw_cost"`
}

func LoadProfile(profilePath string) (*Profile, error) {
	v := viper.New()
	v.SetConfigFile(profilePath)

	v.SetDefault("category", "semi-detached")
	v.SetDefault("eaf", DefaultEAF)
	v.SetDefault("machine_cost", DefaultMachineCost)
	v.SetDefault("misc_cost", DefaultMiscCost)
	v.SetDefault("paid_sw_cost", DefaultPaidSWCost)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var profile Profile
	if err := v.Unmarshal(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse estimation profile: %w", err)
	}
	return &profile, nil
}
