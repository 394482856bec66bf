// Package authctx extracts tenant identity from the verified JWT claims the
// auth middleware stashes in the request context.
package authctx

import (
	"context"
	"fmt"

	"github.com/go-chi/jwtauth/v5"

	"github.com/biz-admin-carlo/bizbuddy-backend-go/internal/domain/user"
)

func CompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id not found in token")
	}
	return companyID, nil
}

func EmployeeID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", fmt.Errorf("employee_id not found in token")
	}
	return employeeID, nil
}

func Role(ctx context.Context) (user.Role, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok || role == "" {
		return "", fmt.Errorf("role not found in token")
	}
	return user.Role(role), nil
}
