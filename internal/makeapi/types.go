package makeapi

import "encoding/json"

// Scenario is an automation workflow defined on the Make platform.
type Scenario struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	TeamID          int64           `json:"teamId"`
	FolderID        *int64          `json:"folderId,omitempty"`
	IsActive        bool            `json:"isActive"`
	IsPaused        bool            `json:"isPaused"`
	IsInvalid       bool            `json:"isinvalid,omitempty"`
	IsLocked        bool            `json:"isLocked,omitempty"`
	UsedPackages    []string        `json:"usedPackages,omitempty"`
	Scheduling      json.RawMessage `json:"scheduling,omitempty"`
	Description     string          `json:"description,omitempty"`
	CreatedByUser   *UserRef        `json:"createdByUser,omitempty"`
	UpdatedByUser   *UserRef        `json:"updatedByUser,omitempty"`
	Created         string          `json:"created,omitempty"`
	LastEdit        string          `json:"lastEdit,omitempty"`
	NextExec        string          `json:"nextExec,omitempty"`
	DLQCount        int             `json:"dlqCount,omitempty"`
	OperationsCount int             `json:"operations,omitempty"`
}

// UserRef identifies a user in nested scenario metadata.
type UserRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// Blueprint is the JSON document describing a scenario's module graph.
// Module mappers and metadata are free-form and passed through opaquely.
type Blueprint struct {
	Name     string          `json:"name"`
	Flow     []Module        `json:"flow"`
	Metadata json.RawMessage `json:"metadata,omitempty"`
}

// Module is a node in a blueprint. A module either performs an operation
// or branches into routes, each carrying its own module sequence.
type Module struct {
	ID       int64                  `json:"id"`
	Module   string                 `json:"module"`
	Version  int                    `json:"version"`
	Mapper   map[string]interface{} `json:"mapper,omitempty"`
	Metadata json.RawMessage        `json:"metadata,omitempty"`
	Routes   []Route                `json:"routes,omitempty"`
}

// Route is one branch of a router module.
type Route struct {
	Flow []Module `json:"flow"`
}

// BlueprintResponse wraps a scenario blueprint with its scheduling data.
type BlueprintResponse struct {
	Blueprint  Blueprint       `json:"blueprint"`
	Scheduling json.RawMessage `json:"scheduling,omitempty"`
	Concept    bool            `json:"concept,omitempty"`
}

// Connection is a stored credential reference, opaque to this system.
type Connection struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	AccountName string          `json:"accountName,omitempty"`
	AccountType string          `json:"accountType,omitempty"`
	TeamID      int64           `json:"teamId"`
	PackageName string          `json:"packageName,omitempty"`
	Expire      string          `json:"expire,omitempty"`
	Metadata    json.RawMessage `json:"metadata,omitempty"`
	Scopes      []string        `json:"scopes,omitempty"`
	Editable    bool            `json:"editable,omitempty"`
	UID         string          `json:"uid,omitempty"`
}

// Hook is a webhook registered on the platform.
type Hook struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	TeamID   int64  `json:"teamId"`
	UDID     string `json:"udid,omitempty"`
	Type     string `json:"type,omitempty"`
	TypeName string `json:"typeName,omitempty"`
	URL      string `json:"url,omitempty"`
	Enabled  bool   `json:"enabled"`
	Gone     bool   `json:"gone,omitempty"`
	Editable bool   `json:"editable,omitempty"`
	Queue    int    `json:"queueCount,omitempty"`
}

// DataStore is a remotely-hosted key-value record collection.
type DataStore struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	TeamID          int64  `json:"teamId"`
	Records         int    `json:"records"`
	Size            string `json:"size,omitempty"`
	MaxSize         string `json:"maxSize,omitempty"`
	DatastructureID *int64 `json:"datastructureId,omitempty"`
}

// DataStoreRecord is a single keyed record within a data store.
type DataStoreRecord struct {
	Key  string                 `json:"key"`
	Data map[string]interface{} `json:"data"`
}

// Team is a group of users within an organization.
type Team struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	OrganizationID int64  `json:"organizationId"`
}

// Organization is the top-level account entity.
type Organization struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	TimezoneID int64  `json:"timezoneId,omitempty"`
	CountryID  int64  `json:"countryId,omitempty"`
	Zone       string `json:"zone,omitempty"`
	Suspended  bool   `json:"isPaused,omitempty"`
}

// User is the authenticated platform user.
type User struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Email      string          `json:"email"`
	Language   string          `json:"language,omitempty"`
	TimezoneID int64           `json:"timezoneId,omitempty"`
	LocaleID   int64           `json:"localeId,omitempty"`
	CountryID  int64           `json:"countryId,omitempty"`
	Features   map[string]bool `json:"features,omitempty"`
	Avatar     string          `json:"avatar,omitempty"`
}

// ScenarioLog is one execution log entry for a scenario.
type ScenarioLog struct {
	IMTID      string          `json:"imtId,omitempty"`
	Duration   int64           `json:"duration,omitempty"`
	Operations int             `json:"operations,omitempty"`
	Transfer   int64           `json:"transfer,omitempty"`
	Type       string          `json:"type,omitempty"`
	AuthorID   *int64          `json:"authorId,omitempty"`
	Instant    bool            `json:"instant,omitempty"`
	Timestamp  string          `json:"timestamp,omitempty"`
	Status     json.RawMessage `json:"status,omitempty"`
}

// RunResponse is returned when a scenario run is requested.
type RunResponse struct {
	ExecutionID string `json:"executionId"`
	Status      string `json:"status,omitempty"`
}
