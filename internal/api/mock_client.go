package api

import (
	"github.com/diogo/planet/internal/models"
)

// MockClient is a mock implementation of ClientInterface for testing
type MockClient struct {
	// Mock return values
	UploadVal  *UploadResult
	UploadErr  error
	AskVal     *AskResult
	AskErr     error
	PingVal    string
	PingErr    error
	BaseURLVal string

	// Call counters/recorders
	UploadCalls  int
	AskCalls     int
	PingCalls    int
	CloseCalled  bool
	LastFile     *models.SelectedFile
	LastQuestion string
}

// Ensure MockClient implements ClientInterface
var _ ClientInterface = (*MockClient)(nil)

func (m *MockClient) Upload(file *models.SelectedFile) (*UploadResult, error) {
	m.UploadCalls++
	m.LastFile = file
	if m.UploadErr != nil {
		return nil, m.UploadErr
	}
	if m.UploadVal != nil {
		return m.UploadVal, nil
	}
	return &UploadResult{FileName: file.Name}, nil
}

func (m *MockClient) Ask(question string) (*AskResult, error) {
	m.AskCalls++
	m.LastQuestion = question
	if m.AskErr != nil {
		return nil, m.AskErr
	}
	if m.AskVal != nil {
		return m.AskVal, nil
	}
	return &AskResult{}, nil
}

func (m *MockClient) Ping() (string, error) {
	m.PingCalls++
	return m.PingVal, m.PingErr
}

func (m *MockClient) BaseURL() string {
	if m.BaseURLVal == "" {
		return models.DefaultBaseURL
	}
	return m.BaseURLVal
}

func (m *MockClient) Close() {
	m.CloseCalled = true
}
