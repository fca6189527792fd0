package controllers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pcgops/cscrm_end/models"
	"github.com/pcgops/cscrm_end/store"
	"github.com/pcgops/cscrm_end/utils"
)

// DashboardController 仪表盘统计接口
type DashboardController struct {
	store *store.Store
}

// NewDashboardController 创建仪表盘控制器
func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{store: s}
}

// Stats 汇总各集合的统计数据
func (dc *DashboardController) Stats(c *gin.Context) {
	customers := dc.store.Customers()
	leads := dc.store.Leads()
	employees := dc.store.Employees()
	feed := dc.store.Feed()

	customersByStatus := make(map[string]int)
	activeCount := 0
	satisfactionSum := 0
	for _, cust := range customers {
		customersByStatus[string(cust.Status)]++
		if cust.Active {
			activeCount++
		}
		satisfactionSum += cust.Satisfaction
	}

	avgSatisfaction := 0.0
	if len(customers) > 0 {
		avgSatisfaction = float64(satisfactionSum) / float64(len(customers))
	}

	leadsByStatus := make(map[string]int)
	for _, l := range leads {
		leadsByStatus[l.Status]++
	}

	// 未完成且下次行动日期已到期的活动
	today := time.Now().Format("2006-01-02")
	overdueActions := 0
	for _, item := range feed {
		if item.IsDone || item.NextActionDate == "" {
			continue
		}
		if item.NextActionDate <= today {
			overdueActions++
		}
	}

	certifiedCount := 0
	for _, e := range employees {
		if e.CertTulipCertified {
			certifiedCount++
		}
	}

	utils.SuccessResponse(c, gin.H{
		"customers": gin.H{
			"total":           len(customers),
			"active":          activeCount,
			"byStatus":        customersByStatus,
			"avgSatisfaction": avgSatisfaction,
			"risk":            customersByStatus[string(models.CustomerStatusRisk)],
		},
		"leads": gin.H{
			"total":    len(leads),
			"byStatus": leadsByStatus,
		},
		"employees": gin.H{
			"total":     len(employees),
			"certified": certifiedCount,
		},
		"activities": gin.H{
			"total":          len(feed),
			"overdueActions": overdueActions,
		},
	}, "")
}
