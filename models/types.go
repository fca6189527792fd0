package models

// CustomerStatus 客户状态枚举
type CustomerStatus string

const (
	CustomerStatusOnboarding CustomerStatus = "Onboarding"
	CustomerStatusLive       CustomerStatus = "Live"
	CustomerStatusRisk       CustomerStatus = "Risk"
	CustomerStatusWarning    CustomerStatus = "Warning"
	CustomerStatusChurned    CustomerStatus = "Churned"
)

// DefaultSatisfaction 客户满意度默认值
const DefaultSatisfaction = 7

// TeamContact 客户方联系人
type TeamContact struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// FileMeta 附件/文档元数据（仅元数据，不做实际文件存储）
type FileMeta struct {
	Name       string `json:"name"`
	Kind       string `json:"kind,omitempty"` // Lead附件子类型: Layout | BOM | Other
	UploadedAt string `json:"uploadedAt,omitempty"`
	Size       int64  `json:"size,omitempty"`
}

// Customer 客户视图模型，字段与customers表一一对应
type Customer struct {
	ID               string                 `json:"id"`
	Company          string                 `json:"company"`
	Name             string                 `json:"name"`
	Email            string                 `json:"email"`
	Phone            string                 `json:"phone"`
	Status           CustomerStatus         `json:"status"`
	Active           bool                   `json:"active"`
	ARR              string                 `json:"arr"`
	SignedDate       string                 `json:"signedDate"`
	Terms            int                    `json:"terms"`
	Satisfaction     int                    `json:"satisfaction"`
	Netsuite         map[string]interface{} `json:"netsuite"`
	Tulip            map[string]interface{} `json:"tulip"`
	CustomerTeam     []TeamContact          `json:"customerTeam"`
	ActivityLog      []CustomerLogEntry     `json:"activityLog"`
	LicensedProducts []string               `json:"licensedProducts"`
	Attachments      []FileMeta             `json:"attachments"`
	Documents        []FileMeta             `json:"documents"`
	Personalizations string                 `json:"personalizations"`

	// PCG侧四个POC引用，均可为空
	PcgSupportPocId         string `json:"pcgSupportPocId"`
	PcgImplementationLeadId string `json:"pcgImplementationLeadId"`
	PcgSalesPocId           string `json:"pcgSalesPocId"`
	PcgProjectPocId         string `json:"pcgProjectPocId"`
}

// Lead 销售线索视图模型
// 数值型运营指标在视图层保留为自由文本，映射层写库前统一清洗
type Lead struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
	PocName     string `json:"pocName"`
	PocEmail    string `json:"pocEmail"`

	AnnualRevenue   string `json:"annualRevenue"`
	UserCount       string `json:"userCount"`
	CurrentErp      string `json:"currentErp"`
	PainPoints      string `json:"painPoints"`
	Timeline        string `json:"timeline"`
	BudgetStatus    string `json:"budgetStatus"`
	DecisionProcess string `json:"decisionProcess"`
	NextStepDate    string `json:"nextStepDate"`
	Probability     string `json:"probability"`
	Status          string `json:"status"`

	// 运营指标
	Sites          string `json:"sites"`
	Operators      string `json:"operators"`
	Shifts         string `json:"shifts"`
	WoPerDay       string `json:"woPerDay"`
	FgItems        string `json:"fgItems"`
	InventoryItems string `json:"inventoryItems"`
	StagingBins    string `json:"stagingBins"`
	CoMan          string `json:"coMan"`

	// 设备与集成
	EquipmentCount   string                 `json:"equipmentCount"`
	ManualStations   string                 `json:"manualStations"`
	OpcMachines      string                 `json:"opcMachines"`
	WorkCells        string                 `json:"workCells"`
	OldMachines      string                 `json:"oldMachines"`
	HasOpcServer     string                 `json:"hasOpcServer"`
	ControlsEngineer string                 `json:"controlsEngineer"`
	Scada            string                 `json:"scada"`
	ScadaSystem      string                 `json:"scadaSystem"`
	Scales           string                 `json:"scales"`
	ScaleVendor      string                 `json:"scaleVendor"`
	OpcDirectory     string                 `json:"opcDirectory"`
	DirectoryFormat  string                 `json:"directoryFormat"`
	Signals          map[string]interface{} `json:"signals"`

	// 系统环境
	NetsuiteEdition    string `json:"netsuiteEdition"`
	Scheduling         string `json:"scheduling"`
	SchedulingSystem   string `json:"schedulingSystem"`
	Customizations     string `json:"customizations"`
	CustomizationsDesc string `json:"customizationsDesc"`
	Wms                string `json:"wms"`
	WmsSystem          string `json:"wmsSystem"`
	Qms                string `json:"qms"`
	QmsSystem          string `json:"qmsSystem"`
	Labeling           string `json:"labeling"`
	ZebraPrinters      string `json:"zebraPrinters"`

	// 合规与流程
	Regulatory            string `json:"regulatory"`
	Validation            string `json:"validation"`
	BatchProcess          string `json:"batchProcess"`
	Ebr                   string `json:"ebr"`
	ContinuousImprovement string `json:"continuousImprovement"`
	CiData                string `json:"ciData"`
	SetupInstructions     string `json:"setupInstructions"`
	SetupFormat           string `json:"setupFormat"`
	WorkInstructions      string `json:"workInstructions"`
	WiFormat              string `json:"wiFormat"`
	Downtime              string `json:"downtime"`
	MaterialLoss          string `json:"materialLoss"`
	LaborCodes            string `json:"laborCodes"`

	Attachments []FileMeta `json:"attachments"`
}

// LeadStatusNew 线索默认状态
const LeadStatusNew = "New"

// Employee 员工视图模型，含八项独立认证标记
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Location  string `json:"location"`
	Bio       string `json:"bio"`
	Title     string `json:"title"`

	CertBasicAppBuilder    bool `json:"certBasicAppBuilder"`
	CertAdvancedAppBuilder bool `json:"certAdvancedAppBuilder"`
	CertSolutionLead       bool `json:"certSolutionLead"`
	CertAdoptionManager    bool `json:"certAdoptionManager"`
	CertSales              bool `json:"certSales"`
	CertGxP                bool `json:"certGxP"`
	CertAiOps              bool `json:"certAiOps"`
	CertTulipCertified     bool `json:"certTulipCertified"`
}

// FullName 员工显示名
func (e Employee) FullName() string {
	if e.FirstName == "" && e.LastName == "" {
		return ""
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

// UserProfile 登录用户档案
// Roles为扁平角色集合；历史数据中的单一role在读取时归一化为单元素集合
type UserProfile struct {
	ID        string   `json:"id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	Roles     []string `json:"roles"`
}

// HasRole 判断用户是否持有指定角色
func (u *UserProfile) HasRole(role string) bool {
	if u == nil {
		return false
	}
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}
