package company_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nicholasDWinters/biztime-exercise/internal/company"
)

func TestService_Create(t *testing.T) {
	type args struct {
		params company.CreateParams
	}

	type testCase struct {
		name      string
		args      args
		setupMock func(m *company.MockRepository)
		wantCode  string
		wantErr   bool
	}

	tests := []testCase{
		{
			name: "ExplicitCode",
			args: args{
				params: company.CreateParams{
					Code:        "apple",
					Name:        "Apple Computer",
					Description: "Maker of OSX.",
				},
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateCompany(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCode: "apple",
			wantErr:  false,
		},
		{
			name: "DerivedCode",
			args: args{
				params: company.CreateParams{
					Name:        "Crème Brûlée & Co. 123",
					Description: "Desserts.",
				},
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateCompany(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *company.Company) error {
						assert.Equal(t, "cremebruleeco123", c.Code)
						return nil
					})
			},
			wantCode: "cremebruleeco123",
			wantErr:  false,
		},
		{
			name: "RepoError",
			args: args{
				params: company.CreateParams{
					Code: "ibm",
					Name: "IBM",
				},
			},
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					CreateCompany(gomock.Any(), gomock.Any()).
					Return(errors.New("db error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := company.NewService(repo)
			got, err := svc.Create(context.Background(), tt.args.params)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.args.params.Name, got.Name)
		})
	}
}

func TestService_Get(t *testing.T) {
	type testCase struct {
		name      string
		code      string
		setupMock func(m *company.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			code: "apple",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					GetCompany(gomock.Any(), "apple").
					Return(&company.Company{Code: "apple", Name: "Apple Computer"}, nil)
			},
		},
		{
			name: "NotFound",
			code: "nope",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					GetCompany(gomock.Any(), "nope").
					Return(nil, company.ErrNotFound)
			},
			wantErr: company.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := company.NewService(repo)
			got, err := svc.Get(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}

			assert.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}

func TestService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := company.NewMockRepository(ctrl)
	repo.EXPECT().
		UpdateCompany(gomock.Any(), "apple", "Apple Inc", "New description.").
		Return(&company.Company{Code: "apple", Name: "Apple Inc", Description: "New description."}, nil)

	svc := company.NewService(repo)
	got, err := svc.Update(context.Background(), "apple", "Apple Inc", "New description.")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc", got.Name)
}

func TestService_Delete(t *testing.T) {
	type testCase struct {
		name      string
		code      string
		setupMock func(m *company.MockRepository)
		wantErr   error
	}

	tests := []testCase{
		{
			name: "Success",
			code: "apple",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					DeleteCompany(gomock.Any(), "apple").
					Return(nil)
			},
		},
		{
			name: "NotFound",
			code: "nope",
			setupMock: func(m *company.MockRepository) {
				m.EXPECT().
					DeleteCompany(gomock.Any(), "nope").
					Return(company.ErrNotFound)
			},
			wantErr: company.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := company.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := company.NewService(repo)
			err := svc.Delete(context.Background(), tt.code)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
		})
	}
}
