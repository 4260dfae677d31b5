package app

import (
	"fmt"

	documentHTTP "github.com/allisson/brdocs/internal/document/http"
	documentService "github.com/allisson/brdocs/internal/document/service"
	documentUseCase "github.com/allisson/brdocs/internal/document/usecase"
)

// CPFIdentifier returns the shared CPF identifier.
func (c *Container) CPFIdentifier() documentService.Identifier {
	c.identifiersInit.Do(c.initIdentifiers)
	return c.cpfIdentifier
}

// CNPJIdentifier returns the shared CNPJ identifier.
func (c *Container) CNPJIdentifier() documentService.Identifier {
	c.identifiersInit.Do(c.initIdentifiers)
	return c.cnpjIdentifier
}

// DocumentUseCase returns the document use case instance.
func (c *Container) DocumentUseCase() (documentUseCase.DocumentUseCase, error) {
	var err error
	c.documentUseCaseInit.Do(func() {
		c.documentUseCase, err = c.initDocumentUseCase()
		if err != nil {
			c.initErrors["documentUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["documentUseCase"]; exists {
		return nil, storedErr
	}
	return c.documentUseCase, nil
}

// DocumentHandler returns the document HTTP handler instance.
func (c *Container) DocumentHandler() (*documentHTTP.DocumentHandler, error) {
	var err error
	c.documentHandlerInit.Do(func() {
		c.documentHandler, err = c.initDocumentHandler()
		if err != nil {
			c.initErrors["documentHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["documentHandler"]; exists {
		return nil, storedErr
	}
	return c.documentHandler, nil
}

func (c *Container) initIdentifiers() {
	c.cpfIdentifier = documentService.NewCPF()
	c.cnpjIdentifier = documentService.NewCNPJ()
}

// initDocumentUseCase creates the document use case, wrapped with metrics when enabled.
func (c *Container) initDocumentUseCase() (documentUseCase.DocumentUseCase, error) {
	baseUseCase := documentUseCase.NewDocumentUseCase(
		c.config.GenerateMaxCount,
		c.CPFIdentifier(),
		c.CNPJIdentifier(),
	)

	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for document use case: %w", err)
		}
		return documentUseCase.NewDocumentUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initDocumentHandler creates the document HTTP handler with all its dependencies.
func (c *Container) initDocumentHandler() (*documentHTTP.DocumentHandler, error) {
	useCase, err := c.DocumentUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get document use case for document handler: %w", err)
	}

	return documentHTTP.NewDocumentHandler(useCase, c.Logger()), nil
}
