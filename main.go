// payli is a stateless validating proxy in front of Bridgecard's card
// issuing APIs. It enforces the request rules Bridgecard applies unevenly,
// forwards clean requests upstream, and collapses every upstream answer into
// one envelope shape.
package main

import (
	_ "embed"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	gateway "github.com/payli/payli/apigateway"
	"github.com/payli/payli/bridge_fields"
	"github.com/payli/payli/issuing"
	"github.com/payli/payli/utils"
)

//go:embed .secrets.json
var secretsFile []byte

var logrusLogger = logrus.New()
var serviceConfig bridge_fields.Config
var issuingService issuing.Service

func parseConfig(data *bridge_fields.Config) error {
	if err := json.Unmarshal(secretsFile, data); err != nil {
		logrusLogger.Printf("Error in parsing config files: %v", err)
		return err
	}
	return nil
}

// GetMainEngine function responsible for getting all of our routes to be delivered for gin
func GetMainEngine() *gin.Engine {
	route := gin.New()
	route.Use(gin.Recovery())
	route.HandleMethodNotAllowed = true
	route.Use(gateway.Instrumentation())
	route.Use(gateway.OptionsMiddleware)
	route.Use(gateway.RequestID())
	route.Use(gateway.RequestLogger(logrusLogger, gateway.LogSamplingConfig{Tick: time.Second, After: 5 * time.Second}))

	route.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	route.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cardholders := route.Group("/api/cardholders")
	{
		cardholders.POST("/register", issuingService.RegisterCardholderSync)
		cardholders.POST("/register_async", issuingService.RegisterCardholder)
		cardholders.GET("/", issuingService.GetCardholder)
		cardholders.DELETE("/", issuingService.DeleteCardholder)
		cardholders.GET("/identity_types", issuingService.IdentityTypes)
		cardholders.GET("/supported_countries", issuingService.SupportedCountries)
		cardholders.GET("/states", issuingService.GetAllStates)
	}

	cards := route.Group("/api/cards")
	{
		cards.POST("/", issuingService.CreateCard)
		cards.POST("/activate_physical", issuingService.ActivatePhysicalCard)
		cards.GET("/details", issuingService.GetCardDetails)
		cards.GET("/balance", issuingService.GetCardBalance)
		cards.PATCH("/fund", issuingService.FundCard)
		cards.PATCH("/unload", issuingService.UnloadCard)
		cards.PATCH("/mock_debit", issuingService.MockDebitTransaction)
		cards.GET("/transactions", issuingService.GetCardTransactions)
		cards.GET("/transaction", issuingService.GetCardTransaction)
		cards.GET("/transaction_status", issuingService.GetTransactionStatus)
		cards.PATCH("/freeze", issuingService.FreezeCard)
		cards.PATCH("/unfreeze", issuingService.UnfreezeCard)
		cards.GET("/cardholder_cards", issuingService.GetAllCardholderCards)
		cards.DELETE("/", issuingService.DeleteCard)
		cards.POST("/pin", issuingService.UpdateCardPin)
		cards.GET("/options", issuingService.SupportedCardOptions)
		cards.GET("/token", issuingService.GenerateCardToken)
		cards.GET("/details_from_token", issuingService.GetCardDetailsFromToken)
	}

	misc := route.Group("/api/misc")
	{
		misc.GET("/cardholders", issuingService.GetAllCardholders)
		misc.GET("/cards", issuingService.GetAllCards)
		misc.PATCH("/wallet/fund", issuingService.FundIssuingWallet)
		misc.GET("/wallet/balance", issuingService.GetIssuingWalletBalance)
		misc.GET("/fx_rates", issuingService.FxRates)
	}

	return route
}

func init() {
	logrusLogger.Level = logrus.InfoLevel
	logrusLogger.SetReportCaller(true)

	if err := parseConfig(&serviceConfig); err != nil {
		logrusLogger.Printf("error in parsing file: %v", err)
	}
	serviceConfig.Defaults()

	binding.Validator = new(bridge_fields.DefaultValidator)
	issuingService = issuing.Service{
		Config: serviceConfig,
		Redis:  utils.GetRedis(serviceConfig.RedisHost),
		Logger: logrusLogger,
	}
}

func main() {
	file, err := os.OpenFile("logrus.log", os.O_CREATE|os.O_WRONLY, 0666)
	if err == nil {
		logrusLogger.Out = file
	} else {
		logrusLogger.Out = os.Stderr
	}

	logrusLogger.Fatal(GetMainEngine().Run(serviceConfig.Port))
}
