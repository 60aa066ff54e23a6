package controllers

import (
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"resto/config"
	"resto/dto"
	"resto/models"
	"resto/response"
	"resto/services"
	"resto/validator"

	"github.com/fiam/gounidecode/unidecode"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schollz/closestmatch"
	"github.com/texttheater/golang-levenshtein/levenshtein"
	"gorm.io/gorm"
)

type EmployeeController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

func NewEmployeeController(db *gorm.DB, redisCli *redis.Client) *EmployeeController {
	return &EmployeeController{DB: db, Redis: redisCli}
}

func employeeCacheKey(restaurantID uint) string {
	return fmt.Sprintf("employees:restaurant:%d", restaurantID)
}

func (e *EmployeeController) GetEmployees(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	cacheKey := employeeCacheKey(uint(restaurantID))

	var employees []models.Employee
	if cached, err := services.GetFromRedis(config.Ctx, e.Redis, cacheKey, &employees); err == nil && cached {
		log.Println("Employee list served from cache")
	} else {
		if err := e.DB.Where("restaurant_id = ?", restaurantID).Find(&employees).Error; err != nil {
			response.ServerError(c)
			return
		}

		if err := services.SetToRedis(config.Ctx, e.Redis, cacheKey, employees, 30*time.Minute); err != nil {
			log.Printf("Failed to cache employee list: %v", err)
		}
	}

	nameFilter := c.Query("name")
	positionFilter := c.Query("position")
	statusFilter := c.Query("status")

	filtered := make([]models.Employee, 0)
	for _, emp := range employees {
		if nameFilter != "" && !strings.Contains(strings.ToLower(emp.Name), strings.ToLower(nameFilter)) {
			continue
		}
		if positionFilter != "" && !strings.EqualFold(emp.Position, positionFilter) {
			continue
		}
		if statusFilter != "" {
			parsedStatus, err := strconv.Atoi(statusFilter)
			if err == nil && emp.Status != parsedStatus {
				continue
			}
		}
		filtered = append(filtered, emp)
	}

	total := len(filtered)

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].UpdatedAt.After(filtered[j].UpdatedAt)
	})

	page, limit := parsePagination(c)
	filtered = paginateEmployees(filtered, page, limit)

	employeesResponse := make([]dto.EmployeeResponse, 0, len(filtered))
	for _, emp := range filtered {
		employeesResponse = append(employeesResponse, buildEmployeeResponse(emp))
	}

	response.SuccessWithPagination(c, employeesResponse, page, limit, total)
}

func (e *EmployeeController) GetEmployeeByID(c *gin.Context) {
	id := c.Param("id")

	var employee models.Employee
	if err := e.DB.Preload("Restaurant").First(&employee, id).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, buildEmployeeResponse(employee))
}

func (e *EmployeeController) CreateEmployee(c *gin.Context) {
	var req dto.EmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		response.BadRequest(c, "Invalid hire date format")
		return
	}

	employee := models.Employee{
		RestaurantID:     req.RestaurantID,
		Name:             req.Name,
		Document:         req.Document,
		PhoneNumber:      req.PhoneNumber,
		Position:         req.Position,
		HireDate:         hireDate,
		BankSalary:       req.BankSalary,
		HandSalary:       req.HandSalary,
		AttendanceBonus:  req.AttendanceBonus,
		BonusEligible:    req.BonusEligible,
		ExpectedCheckIn:  req.ExpectedCheckIn,
		ExpectedCheckOut: req.ExpectedCheckOut,
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := e.DB.Create(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, e.Redis, employeeCacheKey(employee.RestaurantID))

	response.Success(c, buildEmployeeResponse(employee))
}

func (e *EmployeeController) UpdateEmployee(c *gin.Context) {
	var req struct {
		EmployeeID uint `json:"employeeId" binding:"required"`
		dto.EmployeeRequest
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var employee models.Employee
	if err := e.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		response.BadRequest(c, "Invalid hire date format")
		return
	}

	employee.Name = req.Name
	employee.Document = req.Document
	employee.PhoneNumber = req.PhoneNumber
	employee.Position = req.Position
	employee.HireDate = hireDate
	employee.BankSalary = req.BankSalary
	employee.HandSalary = req.HandSalary
	employee.AttendanceBonus = req.AttendanceBonus
	employee.BonusEligible = req.BonusEligible
	if req.ExpectedCheckIn != "" {
		employee.ExpectedCheckIn = req.ExpectedCheckIn
	}
	if req.ExpectedCheckOut != "" {
		employee.ExpectedCheckOut = req.ExpectedCheckOut
	}

	if err := validator.ValidateEmployee(&employee); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := e.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, e.Redis, employeeCacheKey(employee.RestaurantID))

	response.Success(c, buildEmployeeResponse(employee))
}

// TerminateEmployee ends the employment relationship; the settlement itself
// is generated separately through the liquidation endpoints.
func (e *EmployeeController) TerminateEmployee(c *gin.Context) {
	var req dto.TerminateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	terminationDate, err := time.Parse("2006-01-02", req.TerminationDate)
	if err != nil {
		response.BadRequest(c, "Invalid termination date format")
		return
	}

	var employee models.Employee
	if err := e.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if terminationDate.Before(employee.HireDate) {
		response.BadRequest(c, "Termination date precedes hire date")
		return
	}

	employee.TerminationDate = &terminationDate
	employee.Status = 0

	if err := e.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, e.Redis, employeeCacheKey(employee.RestaurantID))

	response.Success(c, buildEmployeeResponse(employee))
}

func (e *EmployeeController) ChangeEmployeeStatus(c *gin.Context) {
	var req struct {
		EmployeeID uint `json:"employeeId" binding:"required"`
		Status     int  `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request data")
		return
	}

	var employee models.Employee
	if err := e.DB.First(&employee, req.EmployeeID).Error; err != nil {
		response.NotFound(c)
		return
	}

	employee.Status = req.Status
	if err := e.DB.Save(&employee).Error; err != nil {
		response.ServerError(c)
		return
	}

	_ = services.DeleteFromRedis(config.Ctx, e.Redis, employeeCacheKey(employee.RestaurantID))

	response.Success(c, gin.H{
		"employeeId": employee.ID,
		"status":     employee.Status,
	})
}

// SearchEmployees ranks a restaurant's employees against a free-text query,
// accent-insensitive and tolerant of typos.
func (e *EmployeeController) SearchEmployees(c *gin.Context) {
	restaurantID, err := strconv.Atoi(c.Query("restaurantId"))
	if err != nil || restaurantID <= 0 {
		response.BadRequest(c, "Missing or invalid restaurantId")
		return
	}

	query := c.Query("q")
	if query == "" {
		response.BadRequest(c, "Missing query")
		return
	}

	var employees []models.Employee
	if err := e.DB.Where("restaurant_id = ?", restaurantID).Find(&employees).Error; err != nil {
		response.ServerError(c)
		return
	}

	cmPositions := createMatcher(prepareUniquePositions(employees))
	scored := filterAndScoreEmployees(query, employees, cmPositions)

	response.SuccessWithTotal(c, scored, len(scored))
}

func buildEmployeeResponse(emp models.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:               emp.ID,
		RestaurantID:     emp.RestaurantID,
		Name:             emp.Name,
		Document:         emp.Document,
		PhoneNumber:      emp.PhoneNumber,
		Position:         emp.Position,
		Avatar:           emp.Avatar,
		Status:           emp.Status,
		HireDate:         emp.HireDate,
		TerminationDate:  emp.TerminationDate,
		BankSalary:       emp.BankSalary,
		HandSalary:       emp.HandSalary,
		AttendanceBonus:  emp.AttendanceBonus,
		BonusEligible:    emp.BonusEligible,
		ExpectedCheckIn:  emp.ExpectedCheckIn,
		ExpectedCheckOut: emp.ExpectedCheckOut,
	}
}

func parsePagination(c *gin.Context) (int, int) {
	page := 0
	limit := 10
	if pageStr := c.Query("page"); pageStr != "" {
		if parsedPage, err := strconv.Atoi(pageStr); err == nil && parsedPage >= 0 {
			page = parsedPage
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 {
			limit = parsedLimit
		}
	}
	return page, limit
}

func paginateEmployees(employees []models.Employee, page, limit int) []models.Employee {
	startIdx := page * limit
	endIdx := startIdx + limit
	if startIdx >= len(employees) {
		return []models.Employee{}
	}
	if endIdx > len(employees) {
		return employees[startIdx:]
	}
	return employees[startIdx:endIdx]
}

// normalizeInput strips accents and case
func normalizeInput(input string) string {
	input = strings.TrimSpace(input)
	input = strings.ToLower(unidecode.Unidecode(input))
	return input
}

func createMatcher(keywords []string) *closestmatch.ClosestMatch {
	return closestmatch.New(keywords, []int{2, 3})
}

func calculateSimilarity(a, b string) float64 {
	distance := levenshtein.DistanceForStrings([]rune(a), []rune(b), levenshtein.DefaultOptions)
	maxLen := float64(len(a))
	if float64(len(b)) > maxLen {
		maxLen = float64(len(b))
	}

	if maxLen == 0 {
		return 1.0
	}

	return 1.0 - float64(distance)/maxLen
}

func prepareUniquePositions(employees []models.Employee) []string {
	uniqueValues := make(map[string]bool)

	for _, emp := range employees {
		if emp.Position != "" {
			uniqueValues[normalizeInput(emp.Position)] = true
		}
	}

	uniqueList := make([]string, 0, len(uniqueValues))
	for val := range uniqueValues {
		uniqueList = append(uniqueList, val)
	}
	return uniqueList
}

func calculateEmployeeScore(query string, emp models.Employee, cmPositions *closestmatch.ClosestMatch) int {
	normalizedQuery := normalizeInput(query)
	score := 0

	normalizedName := normalizeInput(emp.Name)
	if strings.Contains(normalizedName, normalizedQuery) {
		score += 20
	} else if calculateSimilarity(normalizedQuery, normalizedName) > 0.7 {
		score += 12
	}

	if emp.Position != "" && cmPositions.Closest(normalizedQuery) == normalizeInput(emp.Position) {
		score += 10
	}

	if emp.Document != "" && strings.Contains(emp.Document, strings.TrimSpace(query)) {
		score += 15
	}

	return score
}

func filterAndScoreEmployees(query string, employees []models.Employee, cmPositions *closestmatch.ClosestMatch) []dto.ScoredEmployee {
	var filtered []dto.ScoredEmployee
	scoreCh := make(chan dto.ScoredEmployee, len(employees))
	var wg sync.WaitGroup

	for _, emp := range employees {
		wg.Add(1)
		go func(emp models.Employee) {
			defer wg.Done()
			score := calculateEmployeeScore(query, emp, cmPositions)
			if score > 0 {
				scoreCh <- dto.ScoredEmployee{
					Employee: emp,
					Score:    score,
				}
			}
		}(emp)
	}

	go func() {
		wg.Wait()
		close(scoreCh)
	}()

	for scoredEmp := range scoreCh {
		filtered = append(filtered, scoredEmp)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	return filtered
}
