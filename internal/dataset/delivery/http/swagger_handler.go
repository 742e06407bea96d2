package http

// Seed godoc
// @Summary Materialize the synthetic dataset (admin)
// @Description Generate and commit a referentially consistent synthetic dataset. An empty body uses the default generation targets.
// @Tags Dataset
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{suppliers=int,warehouses=int,materials=int,recipes=int,orders=int,batches=int,costs=int,max_trace_events=int,inventory_coverage=number,batch_size=int,continue_on_error=bool,seed=int} false "Generation targets; zero values use defaults"
// @Success 200 {object} object{success=bool,data=object{counts=object,duration=int}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Failure 409 {object} object{success=bool,error=string}
// @Router /admin/dataset/seed [post]
func (h *DatasetHandler) SeedDoc() {}

// Clear godoc
// @Summary Delete all seeded documents (admin)
// @Description Sweep every seeded collection, or the named subset. Requires the confirmation code DELETE_ALL_DATA.
// @Tags Dataset
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{confirmation_code=string,collections=[]string} true "Confirmation code and optional collection subset"
// @Success 200 {object} object{success=bool,data=object{deleted=object}}
// @Failure 400 {object} object{success=bool,error=string}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 403 {object} object{success=bool,error=string}
// @Router /admin/dataset/clear [post]
func (h *DatasetHandler) ClearDoc() {}

// Counts godoc
// @Summary Current document counts (admin)
// @Description Report the document count of every seeded collection
// @Tags Dataset
// @Security BearerAuth
// @Produce json
// @Success 200 {object} object{success=bool,data=object}
// @Failure 401 {object} object{success=bool,error=string}
// @Failure 500 {object} object{success=bool,error=string}
// @Router /admin/dataset/counts [get]
func (h *DatasetHandler) CountsDoc() {}

// HealthCheck godoc
// @Summary Health check
// @Description Check service health and database connectivity
// @Tags Health
// @Produce json
// @Success 200 {object} object{success=bool,message=string}
// @Failure 503 {object} object{success=bool,error=string}
// @Router /health [get]
func (h *DatasetHandler) HealthCheckDoc() {}
