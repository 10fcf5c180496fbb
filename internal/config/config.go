// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/mlavoie/buy-vs-rent/pkg/constants"
	"github.com/mlavoie/buy-vs-rent/pkg/rates"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for buy-vs-rent.
type Configuration struct {
	Projection Projection
	Logging    LoggingConfig `yaml:"logging,omitempty"`
	Output     OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, pdf
	File   string `yaml:"file,omitempty"`   // destination for pdf output
}

// Projection is the immutable input to one buy-vs-rent projection. All rate
// fields are fractions (0.05 = 5%), never percentages; rate categories accept
// either a single flat value or three tier values resetting at the five- and
// ten-year anniversaries.
type Projection struct {
	// Owning side
	PurchasePrice         float64      `json:"purchasePrice"`
	DownPayment           float64      `json:"downPayment"`
	AmortizationYears     int          `json:"amortizationYears"`
	MunicipalJurisdiction bool         `json:"municipalJurisdiction"`
	TitleInsurance        float64      `json:"titleInsurance"`
	LegalFees             float64      `json:"legalFees"`
	HomeInspection        float64      `json:"homeInspection"`
	CommissionRate        float64      `json:"commissionRate"`
	MaintenanceRate       rates.Series `json:"maintenanceRate"`
	PropertyTaxRate       rates.Series `json:"propertyTaxRate"`
	HomeInsuranceRate     rates.Series `json:"homeInsuranceRate"`
	AppreciationRate      rates.Series `json:"appreciationRate"`
	InterestRate          rates.Series `json:"interestRate"`

	// Renting side
	MonthlyRent          float64      `json:"monthlyRent"`
	CPIRate              rates.Series `json:"cpiRate"`
	RentersInsuranceRate rates.Series `json:"rentersInsuranceRate"`
	InvestmentReturnRate rates.Series `json:"investmentReturnRate"`
	InvestmentTaxRate    *float64     `json:"investmentTaxRate,omitempty"`

	// StartYear anchors the absolute calendar years reported in the tables;
	// zero means the current year.
	StartYear int `json:"startYear,omitempty"`
}

// EffectiveInvestmentTaxRate returns the configured tax rate on investment
// gains, or the default when the field was omitted.
func (p Projection) EffectiveInvestmentTaxRate() float64 {
	if p.InvestmentTaxRate == nil {
		return constants.DefaultInvestmentTaxRate
	}
	return *p.InvestmentTaxRate
}

// EffectiveStartYear returns the configured start year, or the current
// calendar year when the field was omitted.
func (p Projection) EffectiveStartYear() int {
	if p.StartYear == 0 {
		return time.Now().Year()
	}
	return p.StartYear
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. Rate categories decode through the rates hook so that
// both flat and tiered shapes are accepted.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		rates.DecodeHookFunc(),
	)))
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}
