package app

import (
	"fmt"

	registrationHTTP "github.com/allisson/brdocs/internal/registration/http"
	registrationUseCase "github.com/allisson/brdocs/internal/registration/usecase"
)

// RegistrationUseCase returns the registration use case instance.
func (c *Container) RegistrationUseCase() (registrationUseCase.RegistrationUseCase, error) {
	var err error
	c.registrationUseCaseInit.Do(func() {
		c.registrationUseCase, err = c.initRegistrationUseCase()
		if err != nil {
			c.initErrors["registrationUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["registrationUseCase"]; exists {
		return nil, storedErr
	}
	return c.registrationUseCase, nil
}

// RegistrationHandler returns the registration HTTP handler instance.
func (c *Container) RegistrationHandler() (*registrationHTTP.RegistrationHandler, error) {
	var err error
	c.registrationHandlerInit.Do(func() {
		c.registrationHandler, err = c.initRegistrationHandler()
		if err != nil {
			c.initErrors["registrationHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["registrationHandler"]; exists {
		return nil, storedErr
	}
	return c.registrationHandler, nil
}

// initRegistrationUseCase creates the registration use case, wrapped with metrics when enabled.
func (c *Container) initRegistrationUseCase() (registrationUseCase.RegistrationUseCase, error) {
	baseUseCase := registrationUseCase.NewRegistrationUseCase(c.CNPJIdentifier(), c.config.RegistrationDomain)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for registration use case: %w", err)
		}
		return registrationUseCase.NewRegistrationUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initRegistrationHandler creates the registration HTTP handler with all its dependencies.
func (c *Container) initRegistrationHandler() (*registrationHTTP.RegistrationHandler, error) {
	useCase, err := c.RegistrationUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get registration use case for registration handler: %w", err)
	}

	return registrationHTTP.NewRegistrationHandler(useCase, c.Logger()), nil
}
